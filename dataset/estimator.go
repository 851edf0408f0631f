// Package dataset loads the raw critical-minerals sheet and turns it into
// the canonical in-memory record and deposit sets.
package dataset

const (
	// DefaultProduction is assumed for any mineral/country pair absent
	// from the production table (tonnes/year).
	DefaultProduction = 10000

	// DefaultPrice is assumed for any mineral absent from the price
	// table (USD per tonne).
	DefaultPrice = 5000

	// DefaultReservesMultiplier converts annual production into an
	// assumed reserve figure (years of production left in the ground).
	DefaultReservesMultiplier = 75
)

// productionTable holds known annual production figures in tonnes,
// keyed by mineral then country.
var productionTable = map[string]map[string]float64{
	"Cobalt":             {"DRC": 130000, "Zambia": 5000, "Morocco": 2000},
	"Manganese":          {"South Africa": 6200000, "Gabon": 7000000, "Ghana": 500000},
	"Lithium":            {"Zimbabwe": 1200, "DRC": 800, "Mali": 300},
	"Copper":             {"DRC": 1500000, "Zambia": 800000, "South Africa": 50000},
	"Graphite (Natural)": {"Mozambique": 30000, "Madagascar": 50000, "Tanzania": 15000},
	"Chromium":           {"South Africa": 18000000, "Zimbabwe": 900000},
}

// priceTable holds known prices in USD per tonne, keyed by mineral.
var priceTable = map[string]float64{
	"Cobalt":                       32000,
	"Platinum-Group Metals (PGMs)": 850000,
	"Manganese":                    1800,
	"Bauxite (for Aluminum)":       50,
	"Graphite (Natural)":           1200,
	"Lithium":                      25000,
	"Copper":                       8500,
	"Nickel":                       18000,
	"Chromium":                     450,
	"Uranium":                      140000,
	"Rare Earth Elements (REEs)":   75000,
}

// Estimator produces production, reserve and price figures for
// mineral/country pairs from fixed lookup tables with explicit defaults.
// The tables are business assumptions shipped as configuration, not
// derived data.
type Estimator struct {
	production         map[string]map[string]float64
	prices             map[string]float64
	defaultProduction  float64
	defaultPrice       float64
	reservesMultiplier float64
}

// NewEstimator creates an estimator over custom tables. Nil tables fall
// back to the built-in ones.
func NewEstimator(production map[string]map[string]float64, prices map[string]float64, reservesMultiplier float64) *Estimator {
	if production == nil {
		production = productionTable
	}
	if prices == nil {
		prices = priceTable
	}
	if reservesMultiplier <= 0 {
		reservesMultiplier = DefaultReservesMultiplier
	}
	return &Estimator{
		production:         production,
		prices:             prices,
		defaultProduction:  DefaultProduction,
		defaultPrice:       DefaultPrice,
		reservesMultiplier: reservesMultiplier,
	}
}

// DefaultEstimator creates an estimator over the built-in tables.
func DefaultEstimator() *Estimator {
	return NewEstimator(nil, nil, DefaultReservesMultiplier)
}

// Production returns the known annual production for the pair, or the
// default when the pair is not in the table.
func (e *Estimator) Production(mineral, country string) float64 {
	if byCountry, ok := e.production[mineral]; ok {
		if v, ok := byCountry[country]; ok {
			return v
		}
	}
	return e.defaultProduction
}

// Reserves returns the assumed reserves for the pair, derived from
// production via the reserves multiplier.
func (e *Estimator) Reserves(mineral, country string) float64 {
	return e.Production(mineral, country) * e.reservesMultiplier
}

// Price returns the known price for the mineral, or the default when
// the mineral is not in the table. Prices do not vary by country.
func (e *Estimator) Price(mineral string) float64 {
	if v, ok := e.prices[mineral]; ok {
		return v
	}
	return e.defaultPrice
}
