package services

import (
	"sort"

	"github.com/chronominerals/minerals-insight/dto"
	"github.com/chronominerals/minerals-insight/repositories"
)

// AnalyticsService derives the grouped sums, averages, rankings and
// ratios behind every report view. All operations are pure reads over
// the current dataset snapshot and return empty results rather than
// errors when nothing matches.
type AnalyticsService struct {
	repo *repositories.DatasetRepository
}

// NewAnalyticsService creates a new analytics service over the dataset.
func NewAnalyticsService(repo *repositories.DatasetRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// ProductionByCountry sums production volume per country for one
// mineral, sorted descending by total with ties broken by country name.
func (s *AnalyticsService) ProductionByCountry(mineral string) []dto.CountryProduction {
	records := s.repo.Search(dto.RecordFilter{MineralName: mineral})
	totals := make(map[string]float64)
	for _, rec := range records {
		totals[rec.Country] += rec.ProductionVolume
	}
	return sortedCountryTotals(totals)
}

// MarketShareByCountry returns the same grouped totals as
// ProductionByCountry; the chart layer derives percentages of the sum.
// One deterministic order keeps the pie and bar views consistent.
func (s *AnalyticsService) MarketShareByCountry(mineral string) []dto.CountryProduction {
	return s.ProductionByCountry(mineral)
}

// AveragePriceByMineral averages the stored price per mineral across
// all records, sorted descending by average price. Prices are constant
// per mineral today, but the mean is computed rather than assumed.
func (s *AnalyticsService) AveragePriceByMineral() []dto.MineralPrice {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range s.repo.AllRecords() {
		sums[rec.MineralName] += rec.Price
		counts[rec.MineralName]++
	}

	prices := make([]dto.MineralPrice, 0, len(sums))
	for mineral, sum := range sums {
		prices = append(prices, dto.MineralPrice{
			Mineral:      mineral,
			AveragePrice: sum / float64(counts[mineral]),
		})
	}
	sort.Slice(prices, func(i, j int) bool {
		if prices[i].AveragePrice != prices[j].AveragePrice {
			return prices[i].AveragePrice > prices[j].AveragePrice
		}
		return prices[i].Mineral < prices[j].Mineral
	})
	return prices
}

// TopProducers ranks countries by total production across all records
// and truncates to limit entries.
func (s *AnalyticsService) TopProducers(limit int) []dto.CountryProduction {
	totals := make(map[string]float64)
	for _, rec := range s.repo.AllRecords() {
		totals[rec.Country] += rec.ProductionVolume
	}
	ranked := sortedCountryTotals(totals)
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ReservesComparison sums reserves per mineral for each requested
// country, sorted by mineral name for stable chart legends.
func (s *AnalyticsService) ReservesComparison(countries []string) []dto.MineralReserves {
	byMineral := make(map[string]map[string]float64)
	for _, country := range countries {
		for _, rec := range s.repo.RecordsByCountry(country) {
			if byMineral[rec.MineralName] == nil {
				byMineral[rec.MineralName] = make(map[string]float64)
			}
			byMineral[rec.MineralName][rec.Country] += rec.Reserves
		}
	}

	out := make([]dto.MineralReserves, 0, len(byMineral))
	for mineral, reserves := range byMineral {
		out = append(out, dto.MineralReserves{Mineral: mineral, Reserves: reserves})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mineral < out[j].Mineral })
	return out
}

// SummaryStatistics computes the dashboard aggregates over all records.
// An empty record set yields zero averages and ("N/A", 0) as the top
// producer instead of an error.
func (s *AnalyticsService) SummaryStatistics() dto.SummaryStats {
	records := s.repo.AllRecords()

	stats := dto.SummaryStats{TopProducer: "N/A"}
	if len(records) == 0 {
		return stats
	}

	var priceSum float64
	totals := make(map[string]float64)
	for _, rec := range records {
		stats.TotalProduction += rec.ProductionVolume
		stats.TotalReserves += rec.Reserves
		priceSum += rec.Price
		totals[rec.Country] += rec.ProductionVolume
	}
	stats.AveragePrice = priceSum / float64(len(records))

	ranked := sortedCountryTotals(totals)
	stats.TopProducer = ranked[0].Country
	stats.TopProducerVolume = ranked[0].Total
	return stats
}

// CountryOverviews lists every known country with its mineral and
// record counts.
func (s *AnalyticsService) CountryOverviews() []dto.CountryOverview {
	countries := s.repo.UniqueCountries()
	out := make([]dto.CountryOverview, 0, len(countries))
	for _, country := range countries {
		records := s.repo.RecordsByCountry(country)
		minerals := make(map[string]struct{})
		for _, rec := range records {
			minerals[rec.MineralName] = struct{}{}
		}
		out = append(out, dto.CountryOverview{
			Name:         country,
			MineralCount: len(minerals),
			TotalRecords: len(records),
		})
	}
	return out
}

// CountryProfile aggregates records, deposits and totals for one
// country. The second return value reports whether any records matched.
func (s *AnalyticsService) CountryProfile(country string) (dto.CountryProfile, bool) {
	records := s.repo.RecordsByCountry(country)
	if len(records) == 0 {
		return dto.CountryProfile{}, false
	}

	profile := dto.CountryProfile{
		Name:     country,
		Minerals: records,
		Deposits: s.repo.Deposits("", country),
	}
	minerals := make(map[string]struct{})
	for _, rec := range records {
		minerals[rec.MineralName] = struct{}{}
		profile.TotalProduction += rec.ProductionVolume
		profile.TotalReserves += rec.Reserves
	}
	for m := range minerals {
		profile.UniqueMinerals = append(profile.UniqueMinerals, m)
	}
	sort.Strings(profile.UniqueMinerals)
	profile.MineralCount = len(profile.UniqueMinerals)
	return profile, true
}

// DashboardStats returns the headline counts for the dashboard view.
func (s *AnalyticsService) DashboardStats() dto.DashboardStats {
	return dto.DashboardStats{
		TotalRecords:   s.repo.CountRecords(),
		TotalCountries: s.repo.CountCountries(),
		TotalDeposits:  s.repo.CountDeposits(),
		UniqueMinerals: len(s.repo.UniqueMinerals()),
	}
}

// sortedCountryTotals orders grouped totals descending, with ties
// broken by country name ascending for determinism.
func sortedCountryTotals(totals map[string]float64) []dto.CountryProduction {
	out := make([]dto.CountryProduction, 0, len(totals))
	for country, total := range totals {
		out = append(out, dto.CountryProduction{Country: country, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Country < out[j].Country
	})
	return out
}
