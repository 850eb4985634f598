package domain

import "slices"

// AirportCategoryID is the article id every airport article refers back to.
const AirportCategoryID = "IATA_airport_code_1"

// AirportCategoryTitle is the key and text of the category article.
const AirportCategoryTitle = "IATA airport codes"

// Accepted header layouts of the Wikipedia airport-code tables.
var (
	AirportColumnsWithTime = []string{"IATA", "ICAO", "Airport name", "Location served", "Time", "DST"}
	AirportColumns         = []string{"IATA", "ICAO", "Airport name", "Location served"}
)

// IsAirportLayout reports whether cols is exactly one of the accepted layouts.
func IsAirportLayout(cols []string) bool {
	return slices.Equal(cols, AirportColumnsWithTime) || slices.Equal(cols, AirportColumns)
}

// AirportRow is one airport of a Wikipedia list page.
// ICAO may be empty.
type AirportRow struct {
	IATA     string
	ICAO     string
	Name     string
	Location string
}

// AirportPage is one "List of airports by IATA airport code" page.
type AirportPage struct {
	// Title is the page <title>, right-trimmed.
	Title string

	// URL is the page location, used for back references.
	URL string

	Rows []AirportRow
}
