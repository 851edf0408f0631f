package dto

import (
	"github.com/chronominerals/minerals-insight/models"
)

// CountryProduction is one (country, summed production) pair
type CountryProduction struct {
	Country string  `json:"country"`
	Total   float64 `json:"total"`
}

// MineralPrice is one (mineral, average price) pair
type MineralPrice struct {
	Mineral      string  `json:"mineral"`
	AveragePrice float64 `json:"averagePrice"`
}

// MineralReserves holds summed reserves for one mineral across the
// requested countries
type MineralReserves struct {
	Mineral  string             `json:"mineral"`
	Reserves map[string]float64 `json:"reserves"`
}

// SummaryStats holds dashboard-level aggregates over the full record set
type SummaryStats struct {
	TotalProduction   float64 `json:"totalProduction"`
	TotalReserves     float64 `json:"totalReserves"`
	AveragePrice      float64 `json:"averagePrice"`
	TopProducer       string  `json:"topProducer"`
	TopProducerVolume float64 `json:"topProducerVolume"`
}

// CountryOverview is one row of the country directory
type CountryOverview struct {
	Name         string `json:"name"`
	MineralCount int    `json:"mineralCount"`
	TotalRecords int    `json:"totalRecords"`
}

// CountryProfile aggregates everything known about one country
type CountryProfile struct {
	Name            string                 `json:"name"`
	Minerals        []models.MineralRecord `json:"minerals"`
	Deposits        []models.Deposit       `json:"deposits"`
	UniqueMinerals  []string               `json:"uniqueMinerals"`
	TotalProduction float64                `json:"totalProduction"`
	TotalReserves   float64                `json:"totalReserves"`
	MineralCount    int                    `json:"mineralCount"`
}

// DashboardStats holds the headline counts for the dashboard view
type DashboardStats struct {
	TotalRecords   int `json:"totalRecords"`
	TotalCountries int `json:"totalCountries"`
	TotalDeposits  int `json:"totalDeposits"`
	UniqueMinerals int `json:"uniqueMinerals"`
}
