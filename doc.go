// Airportexplorer is a backend of the airport exploration map.
//
// It does 3 things: tells a map page where to start (Mapbox token and a
// viewport around the caller, guessed by IP address), gives a list of
// airports as GeoJSON and asks Google Places about a selected airport:
// address, phone, website and a photo.
//
// Tool itself is organized into 3 logical parts:
//
// # Explorer
//
// explorer is a main package of the application. It has Explorer struct
// which composes a catalog of airports, a geolocator and a place
// enricher and acts as http.Handler.
//
// # Providers
//
// This package has implementations of geolocator (MaxMind City
// databases) and place enricher (Google Places).
//
// # Csvdb
//
// Lenient reader of airport CSV files: broken rows are skipped.
//
// A main package itself wires everything together, reads config and
// starts HTTP server.
package main
