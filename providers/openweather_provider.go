// Package providers holds the HTTP clients for the external services:
// the upstream weather API and the IP geolocation API, plus the
// rate-limiting and metrics decorators wrapped around them.
package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/enviark/weather/config"
	apperrors "github.com/enviark/weather/errors"
	"github.com/enviark/weather/models"
)

const oneCallPath = "/data/2.5/onecall"

// OpenWeatherMapProvider fetches One Call snapshots from the upstream
// weather API. Every fetch is a pass-through: the request carries a
// no-cache directive and no response is ever reused.
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeatherMapProvider creates a provider from the weather
// configuration and the resolved API key.
func NewOpenWeatherMapProvider(cfg *config.WeatherConfig) WeatherProvider {
	return &OpenWeatherMapProvider{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

// GetSnapshot performs one upstream fetch and decodes the payload.
// The units token is forwarded verbatim.
func (p *OpenWeatherMapProvider) GetSnapshot(ctx context.Context, latitude, longitude float64, units string) (*models.WeatherSnapshot, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("appid", p.apiKey)
	params.Set("units", units)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+oneCallPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, apperrors.NewUpstreamNetworkError("build weather request", err)
	}
	// Weather data is time-sensitive and unique per coordinate pair;
	// never serve it from an intermediate cache.
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, apperrors.NewUpstreamTimeoutError("weather request timed out", err)
		}
		return nil, apperrors.NewUpstreamNetworkError("weather request failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("close weather response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewUpstreamStatusError(
			fmt.Sprintf("weather API returned status %d", resp.StatusCode), nil)
	}

	var snapshot models.WeatherSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, apperrors.NewUpstreamDecodeError("decode weather response", err)
	}

	return &snapshot, nil
}

// isTimeout reports whether a client error was caused by the request
// deadline rather than the network itself.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}
