package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enviark/weather/config"
	apperrors "github.com/enviark/weather/errors"
)

func geoConfig(baseURL string) *config.GeoConfig {
	return &config.GeoConfig{
		BaseURL:        baseURL,
		TimeoutSeconds: 5,
	}
}

func TestIPAPIResolver_Resolve(t *testing.T) {
	t.Run("SuccessfulLookup", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/json/81.2.69.142", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`{
				"status": "success",
				"lat": 51.5074,
				"lon": -0.1278,
				"city": "London",
				"country": "United Kingdom"
			}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		resolver := NewIPAPIResolver(geoConfig(mockServer.URL))
		location, err := resolver.Resolve(context.Background(), "81.2.69.142")

		require.NoError(t, err)
		require.NotNil(t, location)
		assert.Equal(t, 51.5074, location.Latitude)
		assert.Equal(t, -0.1278, location.Longitude)
		assert.Equal(t, "London", location.City)
		assert.Equal(t, "United Kingdom", location.CountryName)
	})

	t.Run("LookupFailedStatus", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`{"status": "fail", "message": "private range"}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		resolver := NewIPAPIResolver(geoConfig(mockServer.URL))
		location, err := resolver.Resolve(context.Background(), "192.168.0.1")

		assert.Nil(t, location)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.LocationError, appErr.Type)
		assert.Contains(t, appErr.Message, "private range")
	})

	t.Run("NonSuccessHTTPStatus", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer mockServer.Close()

		resolver := NewIPAPIResolver(geoConfig(mockServer.URL))
		location, err := resolver.Resolve(context.Background(), "81.2.69.142")

		assert.Nil(t, location)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.LocationError, appErr.Type)
	})

	t.Run("InvalidJSONResponse", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`not json`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		resolver := NewIPAPIResolver(geoConfig(mockServer.URL))
		location, err := resolver.Resolve(context.Background(), "81.2.69.142")

		assert.Nil(t, location)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.LocationError, appErr.Type)
	})

	t.Run("NetworkFailure", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		mockServer.Close()

		resolver := NewIPAPIResolver(geoConfig(mockServer.URL))
		location, err := resolver.Resolve(context.Background(), "81.2.69.142")

		assert.Nil(t, location)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.LocationError, appErr.Type)
	})
}
