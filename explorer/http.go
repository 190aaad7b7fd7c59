package explorer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang/geo/s2"
)

type httpHandler struct {
	explorer *Explorer
}

func (h httpHandler) handleViewState(w http.ResponseWriter, req *http.Request) {
	h.encodeJSON(w, h.explorer.ViewState(req.RemoteAddr))
}

func (h httpHandler) handleAirports(w http.ResponseWriter, req *http.Request) {
	features, err := h.explorer.Airports()
	if err != nil {
		h.sendError(w, newAPIError("Cannot load airports", err))

		return
	}

	h.encodeJSON(w, features)
}

func (h httpHandler) handleAirportDetail(w http.ResponseWriter, req *http.Request) {
	query, err := parsePlaceQuery(req)
	if err != nil {
		h.sendError(w, newAPIError("Incorrect query", err))

		return
	}

	detail, err := h.explorer.AirportDetail(req.Context(), query)
	if err != nil {
		h.sendError(w, newAPIError("Cannot get airport details", err))

		return
	}

	h.encodeJSON(w, detail)
}

func (h httpHandler) handleNotFound(w http.ResponseWriter, req *http.Request) {
	h.sendError(w, newAPIError("Not found", errRouteNotFound))
}

func (h httpHandler) handleMethodNotAllowed(w http.ResponseWriter, req *http.Request) {
	h.sendError(w, newAPIError("This HTTP method is not allowed", errMethodNotAllowed))
}

func (h httpHandler) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		h.explorer.logger.RequestServed(req, ww.Status(), ww.BytesWritten(), time.Since(started))
	})
}

func (h httpHandler) encodeJSON(w http.ResponseWriter, data interface{}) {
	encoder := json.NewEncoder(w)

	w.Header().Add("Content-Type", "application/json")
	encoder.SetEscapeHTML(false)
	encoder.Encode(data) // nolint: errcheck
}

func (h httpHandler) sendError(w http.ResponseWriter, err *apiError) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode())
	json.NewEncoder(w).Encode(err) // nolint: errcheck
}

func parsePlaceQuery(req *http.Request) (PlaceQuery, error) {
	values := req.URL.Query()
	rv := PlaceQuery{
		Name: strings.TrimSpace(values.Get("name")),
	}

	if rv.Name == "" {
		return rv, fmt.Errorf("%w: name is required", ErrIncorrectQuery)
	}

	latitude, err := strconv.ParseFloat(values.Get("latitude"), 64)
	if err != nil {
		return rv, fmt.Errorf("%w: latitude is not a number", ErrIncorrectQuery)
	}

	longitude, err := strconv.ParseFloat(values.Get("longitude"), 64)
	if err != nil {
		return rv, fmt.Errorf("%w: longitude is not a number", ErrIncorrectQuery)
	}

	if !s2.LatLngFromDegrees(latitude, longitude).IsValid() {
		return rv, fmt.Errorf("%w: coordinates are out of range", ErrIncorrectQuery)
	}

	rv.Latitude = latitude
	rv.Longitude = longitude

	return rv, nil
}

func newRouter(e *Explorer) http.Handler {
	handler := httpHandler{
		explorer: e,
	}
	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(handler.logRequest)
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)

	router.NotFound(handler.handleNotFound)
	router.MethodNotAllowed(handler.handleMethodNotAllowed)

	router.Get("/", handler.handleViewState)
	router.Get("/airports", handler.handleAirports)
	router.Get("/airportDetail", handler.handleAirportDetail)

	return router
}
