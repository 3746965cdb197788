package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/enviark/weather/errors"
	"github.com/enviark/weather/models"
)

type stubWeatherProvider struct {
	snapshot *models.WeatherSnapshot
	err      error
	calls    int
}

func (s *stubWeatherProvider) GetSnapshot(ctx context.Context, latitude, longitude float64, units string) (*models.WeatherSnapshot, error) {
	s.calls++
	return s.snapshot, s.err
}

type stubGeoResolver struct {
	location *models.Location
	err      error
	calls    int
}

func (s *stubGeoResolver) Resolve(ctx context.Context, ip string) (*models.Location, error) {
	s.calls++
	return s.location, s.err
}

func TestRateLimitedWeatherProvider(t *testing.T) {
	t.Run("DelegatesWhenTokenAvailable", func(t *testing.T) {
		stub := &stubWeatherProvider{snapshot: &models.WeatherSnapshot{}}
		provider := NewRateLimitedWeatherProvider(stub, 100)

		snapshot, err := provider.GetSnapshot(context.Background(), 51.51, -0.13, "metric")

		require.NoError(t, err)
		assert.NotNil(t, snapshot)
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("CancelledWaitSurfacesAsTimeout", func(t *testing.T) {
		stub := &stubWeatherProvider{snapshot: &models.WeatherSnapshot{}}
		provider := NewRateLimitedWeatherProvider(stub, 0.001)

		// First call takes the only token; the second has to wait
		// far beyond the already-cancelled context.
		_, err := provider.GetSnapshot(context.Background(), 51.51, -0.13, "metric")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		snapshot, err := provider.GetSnapshot(ctx, 51.51, -0.13, "metric")

		assert.Nil(t, snapshot)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.UpstreamTimeoutError, appErr.Type)
		assert.Equal(t, 1, stub.calls)
	})
}

func TestRateLimitedGeoResolver(t *testing.T) {
	t.Run("DelegatesWhenTokenAvailable", func(t *testing.T) {
		stub := &stubGeoResolver{location: &models.Location{City: "London"}}
		resolver := NewRateLimitedGeoResolver(stub, 100)

		location, err := resolver.Resolve(context.Background(), "81.2.69.142")

		require.NoError(t, err)
		assert.Equal(t, "London", location.City)
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("CancelledWaitSurfacesAsLocationError", func(t *testing.T) {
		stub := &stubGeoResolver{location: &models.Location{}}
		resolver := NewRateLimitedGeoResolver(stub, 0.001)

		_, err := resolver.Resolve(context.Background(), "81.2.69.142")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		location, err := resolver.Resolve(ctx, "81.2.69.142")

		assert.Nil(t, location)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.LocationError, appErr.Type)
		assert.Equal(t, 1, stub.calls)
	})
}

func TestInstrumentedDecoratorsDelegate(t *testing.T) {
	weatherStub := &stubWeatherProvider{snapshot: &models.WeatherSnapshot{}}
	geoStub := &stubGeoResolver{location: &models.Location{City: "London"}}

	snapshot, err := NewInstrumentedWeatherProvider(weatherStub).GetSnapshot(context.Background(), 51.51, -0.13, "metric")
	require.NoError(t, err)
	assert.NotNil(t, snapshot)
	assert.Equal(t, 1, weatherStub.calls)

	location, err := NewInstrumentedGeoResolver(geoStub).Resolve(context.Background(), "81.2.69.142")
	require.NoError(t, err)
	assert.Equal(t, "London", location.City)
	assert.Equal(t, 1, geoStub.calls)
}
