package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronominerals/minerals-insight/dataset"
	"github.com/chronominerals/minerals-insight/repositories"
)

const testSheet = `Critical Mineral,Primary African Producing Countries,Key Uses (Criticality)
Cobalt,"DRC (largest producer), Zambia, Morocco","Batteries, superalloys"
Lithium,"Zimbabwe, DRC, Mali","EV batteries"
Tin,"Nigeria","Solder"
`

func writeTestSheet(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minerals.csv")
	require.NoError(t, os.WriteFile(path, []byte(testSheet), 0o644))
	return path
}

func TestLoadBuildsSnapshot(t *testing.T) {
	repo := repositories.NewDatasetRepository()
	svc := NewDatasetService(repo, dataset.DefaultEstimator(), writeTestSheet(t))

	result := svc.Load()
	assert.Empty(t, result.Warnings)
	// 3 + 3 + 1 countries across the rows.
	assert.Equal(t, 7, result.RecordCount)
	// DRC, Zambia, Morocco, Zimbabwe, Mali, Nigeria.
	assert.Equal(t, 6, result.CountryCount)
	// Tin's first country (Nigeria) has no coordinates, so two deposits.
	assert.Equal(t, 2, result.DepositCount)

	records := repo.RecordsByCountry("DRC")
	require.Len(t, records, 2)
	assert.Equal(t, "Cobalt", records[0].MineralName)
	assert.Equal(t, float64(130000), records[0].ProductionVolume)
	assert.Equal(t, float64(9750000), records[0].Reserves)
}

func TestLoadIsIdempotent(t *testing.T) {
	repo := repositories.NewDatasetRepository()
	svc := NewDatasetService(repo, dataset.DefaultEstimator(), writeTestSheet(t))

	first := svc.Load()
	firstTop := NewAnalyticsService(repo).TopProducers(3)

	second := svc.Load()
	secondTop := NewAnalyticsService(repo).TopProducers(3)

	assert.Equal(t, first.RecordCount, second.RecordCount)
	assert.Equal(t, first.CountryCount, second.CountryCount)
	assert.Equal(t, first.DepositCount, second.DepositCount)
	assert.Equal(t, firstTop, secondTop)
}

func TestLoadMissingSourceDegradesToEmptySets(t *testing.T) {
	repo := repositories.NewDatasetRepository()
	svc := NewDatasetService(repo, dataset.DefaultEstimator(), filepath.Join(t.TempDir(), "absent.csv"))

	result := svc.Load()
	assert.Equal(t, 0, result.RecordCount)
	assert.Equal(t, 0, result.CountryCount)
	assert.Equal(t, 0, result.DepositCount)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "dataset source unavailable")

	// The platform keeps answering queries over the empty snapshot.
	assert.Empty(t, repo.AllRecords())
	stats := NewAnalyticsService(repo).SummaryStatistics()
	assert.Equal(t, "N/A", stats.TopProducer)
}

func TestLoadReplacesPriorSnapshot(t *testing.T) {
	repo := repositories.NewDatasetRepository()
	goodPath := writeTestSheet(t)

	svc := NewDatasetService(repo, dataset.DefaultEstimator(), goodPath)
	svc.Load()
	require.NotZero(t, repo.CountRecords())

	broken := NewDatasetService(repo, dataset.DefaultEstimator(), filepath.Join(t.TempDir(), "gone.csv"))
	result := broken.Load()
	assert.NotEmpty(t, result.Warnings)
	assert.Zero(t, repo.CountRecords())
}
