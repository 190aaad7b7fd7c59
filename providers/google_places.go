package providers

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"

	"github.com/airportexplorer/airportexplorer/explorer"
)

const (
	DefaultPlacesSearchRadius  = 1000
	DefaultPlacesPhotoMaxWidth = 400

	googlePlacesStatusOK = "OK"
	googlePlacesBaseURL  = "https://maps.googleapis.com/maps/api/place/"
)

type GooglePlacesConfig struct {
	APIKey string

	// SearchRadius is a radius of nearby search in meters.
	SearchRadius int

	// PhotoMaxWidth is a maximal width of fetched photo in pixels.
	PhotoMaxWidth int
}

type googlePlacesSearchResult struct {
	PlaceID string `json:"place_id"`
	Photos  []struct {
		PhotoReference   string   `json:"photo_reference"`
		HTMLAttributions []string `json:"html_attributions"`
	} `json:"photos"`
}

type googlePlacesSearchResponse struct {
	Status  string                     `json:"status"`
	Results []googlePlacesSearchResult `json:"results"`
}

type googlePlacesDetailsResponse struct {
	Status string `json:"status"`
	Result struct {
		FormattedAddress     string `json:"formatted_address"`
		FormattedPhoneNumber string `json:"formatted_phone_number"`
		Website              string `json:"website"`
	} `json:"result"`
}

type googlePlacesProvider struct {
	conf   GooglePlacesConfig
	client explorer.HTTPClient
	logger explorer.Logger
}

func (g googlePlacesProvider) Name() string {
	return NameGooglePlaces
}

// Enrich does nearby search, fetches details of the top result and its
// first photo if any. Steps go one by one: each one needs an output of
// the search.
func (g googlePlacesProvider) Enrich(ctx context.Context, query explorer.PlaceQuery) (explorer.AirportDetail, error) {
	rv := explorer.AirportDetail{}

	place, err := g.search(ctx, query)
	if err != nil {
		return rv, err
	}

	if err := g.details(ctx, place.PlaceID, &rv); err != nil {
		return rv, err
	}

	if len(place.Photos) == 0 || place.Photos[0].PhotoReference == "" {
		return rv, nil
	}

	photo, err := g.photo(ctx, place.Photos[0].PhotoReference)
	if err != nil {
		g.logger.EnrichError(query, g.Name(), fmt.Errorf("cannot fetch a photo: %w", err))

		return rv, nil
	}

	rv.PhotoBase64 = photo

	if len(place.Photos[0].HTMLAttributions) > 0 {
		rv.PhotoCredit = place.Photos[0].HTMLAttributions[0]
	}

	return rv, nil
}

func (g googlePlacesProvider) search(ctx context.Context, query explorer.PlaceQuery) (googlePlacesSearchResult, error) {
	params := url.Values{}

	params.Set("name", query.Name)
	params.Set("location", query.Location())
	params.Set("radius", strconv.Itoa(g.conf.SearchRadius))

	response := googlePlacesSearchResponse{}

	if err := g.getJSON(ctx, "nearbysearch/json", params, &response); err != nil {
		return googlePlacesSearchResult{}, fmt.Errorf("cannot do nearby search: %w", err)
	}

	switch {
	case response.Status != googlePlacesStatusOK:
		return googlePlacesSearchResult{}, fmt.Errorf("%w: nearby search has responded with %s",
			explorer.ErrPlaceNotFound, response.Status)
	case len(response.Results) == 0:
		return googlePlacesSearchResult{}, fmt.Errorf("%w: nearby search has no results",
			explorer.ErrPlaceNotFound)
	}

	return response.Results[0], nil
}

func (g googlePlacesProvider) details(ctx context.Context, placeID string, detail *explorer.AirportDetail) error {
	params := url.Values{}

	params.Set("place_id", placeID)
	params.Set("fields", "formatted_address,formatted_phone_number,website")

	response := googlePlacesDetailsResponse{}

	if err := g.getJSON(ctx, "details/json", params, &response); err != nil {
		return fmt.Errorf("cannot fetch place details: %w", err)
	}

	if response.Status != googlePlacesStatusOK {
		return fmt.Errorf("%w: place details has responded with %s",
			explorer.ErrPlaceNotFound, response.Status)
	}

	detail.FormattedAddress = response.Result.FormattedAddress
	detail.PhoneNumber = response.Result.FormattedPhoneNumber
	detail.Website = response.Result.Website

	return nil
}

func (g googlePlacesProvider) photo(ctx context.Context, reference string) (string, error) {
	params := url.Values{}

	params.Set("photo_reference", reference)
	params.Set("maxwidth", strconv.Itoa(g.conf.PhotoMaxWidth))

	resp, err := g.get(ctx, "photo", params)
	if err != nil {
		return "", err
	}

	defer flushResponse(resp.Body)

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("cannot read a photo: %w", err)
	}

	if len(data) == 0 {
		return "", fmt.Errorf("photo is empty")
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

func (g googlePlacesProvider) getJSON(ctx context.Context, path string, params url.Values, target interface{}) error {
	resp, err := g.get(ctx, path, params)
	if err != nil {
		return err
	}

	defer flushResponse(resp.Body)

	if err := json.NewDecoder(bufio.NewReader(resp.Body)).Decode(target); err != nil {
		return fmt.Errorf("cannot parse a response: %w", err)
	}

	return nil
}

func (g googlePlacesProvider) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	params.Set("key", g.conf.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		googlePlacesBaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot build a request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot send a request: %w", err)
	}

	return resp, nil
}

// NewGooglePlaces returns a new instance of enricher which works with
// Google Places web service.
//
//	Identifier: google_places
//	Provider type: online
//	Website: https://developers.google.com/maps/documentation/places/web-service
//
// Zero values of radius and photo width are replaced with defaults.
func NewGooglePlaces(client explorer.HTTPClient,
	logger explorer.Logger,
	conf GooglePlacesConfig) (explorer.PlaceEnricher, error) {
	if conf.APIKey == "" {
		return nil, ErrAuthTokenIsRequired
	}

	if conf.SearchRadius <= 0 {
		conf.SearchRadius = DefaultPlacesSearchRadius
	}

	if conf.PhotoMaxWidth <= 0 {
		conf.PhotoMaxWidth = DefaultPlacesPhotoMaxWidth
	}

	return googlePlacesProvider{
		conf:   conf,
		client: client,
		logger: logger,
	}, nil
}
