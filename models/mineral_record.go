package models

import (
	"time"
)

// MineralRecord represents one mineral produced in one country, with
// estimated production, reserve and price figures attached at load time.
// Records are created in bulk when the dataset loads and never mutated;
// a reload replaces the whole set.
type MineralRecord struct {
	ID               string    `json:"id"`
	MineralName      string    `json:"mineralName"`
	Country          string    `json:"country"`
	Uses             string    `json:"uses"`
	Year             int       `json:"year"`
	ProductionVolume float64   `json:"productionVolume"` // tonnes/year
	Reserves         float64   `json:"reserves"`         // tonnes
	Price            float64   `json:"price"`            // USD per tonne
	Unit             string    `json:"unit"`
	CreatedAt        time.Time `json:"createdAt"`
}
