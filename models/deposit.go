package models

// DepositStatus represents the operational status of a deposit
type DepositStatus string

const (
	DepositStatusActive DepositStatus = "Active"
)

// Deposit represents one synthesized point location for a mineral's
// primary producing country, used by the map view. At most one deposit
// exists per raw dataset row.
type Deposit struct {
	ID               string        `json:"id"`
	Mineral          string        `json:"mineral"`
	LocationName     string        `json:"locationName"`
	Country          string        `json:"country"`
	Latitude         float64       `json:"latitude"`
	Longitude        float64       `json:"longitude"`
	Reserves         float64       `json:"reserves"`
	AnnualProduction float64       `json:"annualProduction"`
	Status           DepositStatus `json:"status"`
}
