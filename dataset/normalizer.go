package dataset

import (
	"time"

	"github.com/google/uuid"

	"github.com/chronominerals/minerals-insight/models"
)

const datasetYear = 2024

// Normalize fans each raw row out into one MineralRecord per producing
// country, attaching estimated figures. Emission order follows input row
// order then country-list order so repeated loads of the same source
// produce identical snapshots apart from IDs and timestamps.
func Normalize(rows []RawRow, est *Estimator, now time.Time) []models.MineralRecord {
	records := make([]models.MineralRecord, 0, len(rows))
	for _, row := range rows {
		for _, country := range SplitCountries(row.Countries) {
			records = append(records, models.MineralRecord{
				ID:               uuid.NewString(),
				MineralName:      row.Mineral,
				Country:          country,
				Uses:             row.Uses,
				Year:             datasetYear,
				ProductionVolume: est.Production(row.Mineral, country),
				Reserves:         est.Reserves(row.Mineral, country),
				Price:            est.Price(row.Mineral),
				Unit:             "tonnes",
				CreatedAt:        now,
			})
		}
	}
	return records
}
