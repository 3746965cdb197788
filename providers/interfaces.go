package providers

import (
	"context"

	"github.com/enviark/weather/models"
)

// WeatherProvider defines the interface for weather data providers
type WeatherProvider interface {
	GetSnapshot(ctx context.Context, latitude, longitude float64, units string) (*models.WeatherSnapshot, error)
}

// GeoResolver defines the interface for client IP geolocation
type GeoResolver interface {
	Resolve(ctx context.Context, ip string) (*models.Location, error)
}
