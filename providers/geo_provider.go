package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/enviark/weather/config"
	apperrors "github.com/enviark/weather/errors"
	"github.com/enviark/weather/models"
)

// IPAPIResolver resolves a client IP to a geographic location through
// an ip-api.com style JSON endpoint. Every failure mode surfaces as a
// LocationError: for the caller the distinction does not matter, the
// location simply could not be determined.
type IPAPIResolver struct {
	baseURL    string
	httpClient *http.Client
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}

// NewIPAPIResolver creates a resolver from the geolocation configuration.
func NewIPAPIResolver(cfg *config.GeoConfig) GeoResolver {
	return &IPAPIResolver{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

// Resolve looks up the location of one IP address.
func (r *IPAPIResolver) Resolve(ctx context.Context, ip string) (*models.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/json/%s", r.baseURL, ip), nil)
	if err != nil {
		return nil, apperrors.NewLocationError("build geolocation request", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewLocationError("geolocation request failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("close geolocation response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewLocationError(
			fmt.Sprintf("geolocation API returned status %d", resp.StatusCode), nil)
	}

	var payload ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewLocationError("decode geolocation response", err)
	}

	if payload.Status != "success" {
		return nil, apperrors.NewLocationError(
			fmt.Sprintf("geolocation lookup failed: %s", payload.Message), nil)
	}

	return &models.Location{
		Latitude:    payload.Lat,
		Longitude:   payload.Lon,
		City:        payload.City,
		CountryName: payload.Country,
	}, nil
}
