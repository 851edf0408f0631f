package dataset

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/chronominerals/minerals-insight/models"
)

// Synthesize derives at most one representative deposit per raw row for
// the map view, placed in the row's first listed producing country.
// Rows whose first country is unknown to the coordinate table are
// silently skipped.
func Synthesize(rows []RawRow, est *Estimator) []models.Deposit {
	deposits := make([]models.Deposit, 0, len(rows))
	for _, row := range rows {
		countries := SplitCountries(row.Countries)
		if len(countries) == 0 {
			continue
		}
		first := countries[0]
		coord, ok := CountryCoordinate(first)
		if !ok {
			continue
		}
		deposits = append(deposits, models.Deposit{
			ID:               uuid.NewString(),
			Mineral:          row.Mineral,
			LocationName:     fmt.Sprintf("%s Deposit - %s", row.Mineral, first),
			Country:          first,
			Latitude:         coord.Latitude,
			Longitude:        coord.Longitude,
			Reserves:         est.Reserves(row.Mineral, first),
			AnnualProduction: est.Production(row.Mineral, first),
			Status:           models.DepositStatusActive,
		})
	}
	return deposits
}
