package providers

import (
	"context"

	"golang.org/x/time/rate"

	apperrors "github.com/enviark/weather/errors"
	"github.com/enviark/weather/models"
)

// RateLimitedWeatherProvider bounds the outbound call rate to the
// weather API with a token bucket. Waiting respects the request
// context; a cancelled wait surfaces as a timeout.
type RateLimitedWeatherProvider struct {
	provider WeatherProvider
	limiter  *rate.Limiter
}

// NewRateLimitedWeatherProvider wraps a provider with a limiter
// allowing rps requests per second.
func NewRateLimitedWeatherProvider(provider WeatherProvider, rps float64) WeatherProvider {
	return &RateLimitedWeatherProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
	}
}

func (p *RateLimitedWeatherProvider) GetSnapshot(ctx context.Context, latitude, longitude float64, units string) (*models.WeatherSnapshot, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, apperrors.NewUpstreamTimeoutError("rate limit wait cancelled", err)
	}
	return p.provider.GetSnapshot(ctx, latitude, longitude, units)
}

// RateLimitedGeoResolver bounds the outbound call rate to the
// geolocation API.
type RateLimitedGeoResolver struct {
	resolver GeoResolver
	limiter  *rate.Limiter
}

// NewRateLimitedGeoResolver wraps a resolver with a limiter allowing
// rps requests per second.
func NewRateLimitedGeoResolver(resolver GeoResolver, rps float64) GeoResolver {
	return &RateLimitedGeoResolver{
		resolver: resolver,
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
	}
}

func (r *RateLimitedGeoResolver) Resolve(ctx context.Context, ip string) (*models.Location, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, apperrors.NewLocationError("rate limit wait cancelled", err)
	}
	return r.resolver.Resolve(ctx, ip)
}
