package dto

// RecordFilter narrows a mineral record search. Empty fields impose no
// constraint; non-empty fields must match case-insensitively.
type RecordFilter struct {
	MineralName string `form:"mineral"`
	Country     string `form:"country"`
}

// LoadResult summarizes one dataset load
type LoadResult struct {
	RecordCount  int      `json:"recordCount"`
	CountryCount int      `json:"countryCount"`
	DepositCount int      `json:"depositCount"`
	Warnings     []string `json:"warnings,omitempty"`
}
