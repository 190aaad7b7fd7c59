package providers

const (
	// Identifier for MaxMind GeoLite2/GeoIP2 City databases.
	NameMaxmindCity = "maxmind_city"

	// Identifier for Google Places web service.
	NameGooglePlaces = "google_places"
)
