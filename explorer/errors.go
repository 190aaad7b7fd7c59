package explorer

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	// ErrPlaceNotFound is returned by PlaceEnricher if places service
	// cannot match a given airport.
	ErrPlaceNotFound = errors.New("place is not found")

	// ErrEnrichmentFailed wraps every enricher error except
	// ErrPlaceNotFound: the places service is unreachable or has
	// responded with something we cannot read.
	ErrEnrichmentFailed = errors.New("places service has failed")

	// ErrIncorrectQuery is returned if request parameters are missing or
	// malformed.
	ErrIncorrectQuery = errors.New("incorrect query")

	ErrIncorrectAddress       = errors.New("incorrect ip address")
	ErrNoCoordinates          = errors.New("location has no coordinates")
	ErrLocatorIsNotConfigured = errors.New("geolocator is not configured")

	errRouteNotFound    = errors.New("route is not found")
	errMethodNotAllowed = errors.New("method is not allowed")
	statusCodes         = []struct {
		target     error
		statusCode int
	}{
		{ErrPlaceNotFound, http.StatusBadRequest},
		{ErrIncorrectQuery, http.StatusBadRequest},
		{ErrEnrichmentFailed, http.StatusBadGateway},
		{errRouteNotFound, http.StatusNotFound},
		{errMethodNotAllowed, http.StatusMethodNotAllowed},
	}
)

// apiError is an error which is sent to the client. A status code is
// derived from the wrapped error, unknown errors are 500.
type apiError struct {
	message string
	err     error
}

func (a *apiError) StatusCode() int {
	if a == nil {
		return http.StatusInternalServerError
	}

	for _, v := range statusCodes {
		if errors.Is(a.err, v.target) {
			return v.statusCode
		}
	}

	return http.StatusInternalServerError
}

func (a *apiError) Unwrap() error {
	if a == nil {
		return nil
	}

	return a.err
}

func (a *apiError) Error() string {
	switch {
	case a == nil:
		return ""
	case a.err == nil:
		return a.message
	case a.message == "":
		return a.err.Error()
	}

	return a.message + ": " + a.err.Error()
}

func (a *apiError) MarshalJSON() ([]byte, error) {
	payload := struct {
		Error struct {
			Message string `json:"message"`
			Context string `json:"context"`
		} `json:"error"`
	}{}

	if a != nil {
		payload.Error.Message = a.message

		if a.err != nil {
			payload.Error.Context = a.err.Error()
		}
	}

	return json.Marshal(&payload)
}

func newAPIError(message string, err error) *apiError {
	return &apiError{
		message: message,
		err:     err,
	}
}
