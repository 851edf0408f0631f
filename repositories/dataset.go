package repositories

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/chronominerals/minerals-insight/dto"
	"github.com/chronominerals/minerals-insight/models"
)

// snapshot is one immutable generation of the dataset. Readers always
// see a complete snapshot; a reload swaps in a new one atomically.
type snapshot struct {
	records  []models.MineralRecord
	deposits []models.Deposit
}

// DatasetRepository owns the canonical record and deposit sets. All
// queries are pure reads over the current snapshot; Replace is the only
// write and replaces the whole set.
type DatasetRepository struct {
	current atomic.Pointer[snapshot]
}

// NewDatasetRepository creates a repository holding an empty snapshot.
func NewDatasetRepository() *DatasetRepository {
	r := &DatasetRepository{}
	r.current.Store(&snapshot{})
	return r
}

// Replace atomically swaps in a new generation of records and deposits.
// Callers must not mutate the slices after handing them over.
func (r *DatasetRepository) Replace(records []models.MineralRecord, deposits []models.Deposit) {
	r.current.Store(&snapshot{records: records, deposits: deposits})
}

// AllRecords returns the full mineral record set in load order.
func (r *DatasetRepository) AllRecords() []models.MineralRecord {
	return r.current.Load().records
}

// Search returns records matching every provided filter field,
// case-insensitively, preserving load order. Empty filter fields are
// unconstrained, so a zero filter returns the full set.
func (r *DatasetRepository) Search(filter dto.RecordFilter) []models.MineralRecord {
	records := r.current.Load().records
	results := make([]models.MineralRecord, 0, len(records))
	for _, rec := range records {
		if filter.MineralName != "" && !strings.EqualFold(rec.MineralName, filter.MineralName) {
			continue
		}
		if filter.Country != "" && !strings.EqualFold(rec.Country, filter.Country) {
			continue
		}
		results = append(results, rec)
	}
	return results
}

// RecordsByCountry returns all records for a specific country.
func (r *DatasetRepository) RecordsByCountry(country string) []models.MineralRecord {
	return r.Search(dto.RecordFilter{Country: country})
}

// UniqueMinerals returns the sorted, deduplicated list of mineral names.
func (r *DatasetRepository) UniqueMinerals() []string {
	records := r.current.Load().records
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		seen[rec.MineralName] = struct{}{}
	}
	return sortedKeys(seen)
}

// UniqueCountries returns the sorted, deduplicated list of countries.
func (r *DatasetRepository) UniqueCountries() []string {
	records := r.current.Load().records
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		seen[rec.Country] = struct{}{}
	}
	return sortedKeys(seen)
}

// Deposits returns deposits matching both provided filters,
// case-insensitively; empty filters are unconstrained.
func (r *DatasetRepository) Deposits(mineral, country string) []models.Deposit {
	deposits := r.current.Load().deposits
	results := make([]models.Deposit, 0, len(deposits))
	for _, d := range deposits {
		if mineral != "" && !strings.EqualFold(d.Mineral, mineral) {
			continue
		}
		if country != "" && !strings.EqualFold(d.Country, country) {
			continue
		}
		results = append(results, d)
	}
	return results
}

// CountRecords returns the total number of mineral records.
func (r *DatasetRepository) CountRecords() int {
	return len(r.current.Load().records)
}

// CountCountries returns the number of distinct countries.
func (r *DatasetRepository) CountCountries() int {
	return len(r.UniqueCountries())
}

// CountDeposits returns the total number of deposits.
func (r *DatasetRepository) CountDeposits() int {
	return len(r.current.Load().deposits)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
