package dataset

// Coordinate is a point location for a country centroid
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// countryCoordinates covers the producing countries the map view knows
// how to place. Rows whose first country is absent here produce no deposit.
var countryCoordinates = map[string]Coordinate{
	"DRC":          {Latitude: -4.0, Longitude: 23.0},
	"South Africa": {Latitude: -29.0, Longitude: 25.0},
	"Zimbabwe":     {Latitude: -19.0, Longitude: 29.8},
	"Zambia":       {Latitude: -13.1, Longitude: 27.8},
	"Mozambique":   {Latitude: -18.6, Longitude: 35.5},
	"Madagascar":   {Latitude: -19.0, Longitude: 46.3},
	"Tanzania":     {Latitude: -6.3, Longitude: 34.8},
	"Ghana":        {Latitude: 7.9, Longitude: -1.0},
	"Guinea":       {Latitude: 9.9, Longitude: -9.6},
	"Namibia":      {Latitude: -22.5, Longitude: 17.0},
	"Gabon":        {Latitude: -0.8, Longitude: 11.6},
	"Niger":        {Latitude: 17.6, Longitude: 8.0},
	"Morocco":      {Latitude: 31.7, Longitude: -7.0},
}

// CountryCoordinate returns the centroid for a country and whether the
// country is known to the coordinate table.
func CountryCoordinate(country string) (Coordinate, bool) {
	c, ok := countryCoordinates[country]
	return c, ok
}
