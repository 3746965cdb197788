package providers

import (
	"context"
	"time"

	"github.com/enviark/weather/metrics"
	"github.com/enviark/weather/models"
)

// InstrumentedWeatherProvider records call counts and latency for the
// wrapped weather provider.
type InstrumentedWeatherProvider struct {
	provider WeatherProvider
	metrics  *metrics.UpstreamMetrics
}

// NewInstrumentedWeatherProvider wraps a provider with upstream metrics.
func NewInstrumentedWeatherProvider(provider WeatherProvider) WeatherProvider {
	return &InstrumentedWeatherProvider{
		provider: provider,
		metrics:  metrics.NewUpstreamMetrics("openweathermap"),
	}
}

func (p *InstrumentedWeatherProvider) GetSnapshot(ctx context.Context, latitude, longitude float64, units string) (*models.WeatherSnapshot, error) {
	start := time.Now()
	snapshot, err := p.provider.GetSnapshot(ctx, latitude, longitude, units)
	p.metrics.Record(outcome(err), time.Since(start))
	return snapshot, err
}

// InstrumentedGeoResolver records call counts and latency for the
// wrapped geolocation resolver.
type InstrumentedGeoResolver struct {
	resolver GeoResolver
	metrics  *metrics.UpstreamMetrics
}

// NewInstrumentedGeoResolver wraps a resolver with upstream metrics.
func NewInstrumentedGeoResolver(resolver GeoResolver) GeoResolver {
	return &InstrumentedGeoResolver{
		resolver: resolver,
		metrics:  metrics.NewUpstreamMetrics("ip-api"),
	}
}

func (r *InstrumentedGeoResolver) Resolve(ctx context.Context, ip string) (*models.Location, error) {
	start := time.Now()
	location, err := r.resolver.Resolve(ctx, ip)
	r.metrics.Record(outcome(err), time.Since(start))
	return location, err
}

func outcome(err error) string {
	if err != nil {
		return metrics.OutcomeError
	}
	return metrics.OutcomeSuccess
}
