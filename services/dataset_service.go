package services

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/chronominerals/minerals-insight/dataset"
	"github.com/chronominerals/minerals-insight/dto"
	"github.com/chronominerals/minerals-insight/repositories"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// DatasetService runs the load pipeline: read the raw sheet, normalize
// it into mineral records, synthesize deposits, and swap the new
// snapshot into the repository.
type DatasetService struct {
	repo       *repositories.DatasetRepository
	estimator  *dataset.Estimator
	sourcePath string
}

// NewDatasetService creates a new dataset service over a repository,
// an estimator and the raw source file path.
func NewDatasetService(repo *repositories.DatasetRepository, est *dataset.Estimator, sourcePath string) *DatasetService {
	return &DatasetService{repo: repo, estimator: est, sourcePath: sourcePath}
}

// Load rebuilds the canonical record and deposit sets from the raw
// source. A missing or malformed source degrades to empty sets with a
// warning instead of failing, so the rest of the platform stays usable.
// Loading twice from an unchanged source yields identical counts.
func (s *DatasetService) Load() dto.LoadResult {
	var warnings []string

	rows, err := dataset.ReadSourceFile(s.sourcePath)
	if err != nil {
		logger.Warn().Err(err).Str("path", s.sourcePath).Msg("dataset source unavailable, loading empty sets")
		warnings = append(warnings, "dataset source unavailable: "+err.Error())
		rows = nil
	}

	now := time.Now()
	records := dataset.Normalize(rows, s.estimator, now)
	deposits := dataset.Synthesize(rows, s.estimator)
	s.repo.Replace(records, deposits)

	result := dto.LoadResult{
		RecordCount:  s.repo.CountRecords(),
		CountryCount: s.repo.CountCountries(),
		DepositCount: s.repo.CountDeposits(),
		Warnings:     warnings,
	}
	logger.Info().
		Int("records", result.RecordCount).
		Int("countries", result.CountryCount).
		Int("deposits", result.DepositCount).
		Msg("dataset loaded")
	return result
}
