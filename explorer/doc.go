// This package provides a set of structs and functions which power the
// airport exploration map: an initial viewport for the caller, a list
// of airports as GeoJSON and details about a single airport.
//
// explorer is a core of the airportexplorer project. The rest of the
// application shows how to wire it: how to read configuration, how
// to build providers and how to run the HTTP server.
//
// Explorer is a main entity of the package. It is composed from a
// Catalog of airports, a GeoLocator which guesses where a caller is and
// a PlaceEnricher which asks an external places service about a
// selected airport. Explorer can act as http.Handler.
package explorer
