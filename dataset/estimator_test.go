package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimatorProduction(t *testing.T) {
	est := DefaultEstimator()

	tests := []struct {
		name    string
		mineral string
		country string
		want    float64
	}{
		{"known pair", "Cobalt", "DRC", 130000},
		{"known mineral unknown country", "Cobalt", "Nigeria", DefaultProduction},
		{"unknown mineral", "Diamond", "DRC", DefaultProduction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, est.Production(tt.mineral, tt.country))
		})
	}
}

func TestEstimatorReserves(t *testing.T) {
	est := DefaultEstimator()
	assert.Equal(t, float64(130000*75), est.Reserves("Cobalt", "DRC"))
	assert.Equal(t, float64(DefaultProduction*75), est.Reserves("Diamond", "Nowhere"))
}

func TestEstimatorReservesMultiplierOverride(t *testing.T) {
	est := NewEstimator(nil, nil, 50)
	assert.Equal(t, float64(130000*50), est.Reserves("Cobalt", "DRC"))
}

func TestEstimatorPrice(t *testing.T) {
	est := DefaultEstimator()
	assert.Equal(t, float64(32000), est.Price("Cobalt"))
	assert.Equal(t, float64(850000), est.Price("Platinum-Group Metals (PGMs)"))
	assert.Equal(t, float64(DefaultPrice), est.Price("Diamond"))
}

func TestEstimatorPriceIgnoresCountry(t *testing.T) {
	est := DefaultEstimator()
	// Price is keyed by mineral only; every country sees the same figure.
	assert.Equal(t, est.Price("Copper"), est.Price("Copper"))
}

func TestCountryCoordinate(t *testing.T) {
	coord, ok := CountryCoordinate("DRC")
	assert.True(t, ok)
	assert.Equal(t, -4.0, coord.Latitude)
	assert.Equal(t, 23.0, coord.Longitude)

	_, ok = CountryCoordinate("Atlantis")
	assert.False(t, ok)
}
