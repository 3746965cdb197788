package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/enviark/weather/errors"
)

// Config represents the application configuration structure
type Config struct {
	Server  ServerConfig  `split_words:"true"`
	Ops     OpsConfig     `split_words:"true"`
	Log     LogConfig     `split_words:"true"`
	Weather WeatherConfig `split_words:"true"`
	Geo     GeoConfig     `split_words:"true"`
	Secrets SecretsConfig `split_words:"true"`
}

// ServerConfig contains public HTTP server configuration
type ServerConfig struct {
	Port                  int `envconfig:"SERVER_PORT" default:"8080"`
	RequestTimeoutSeconds int `envconfig:"REQUEST_TIMEOUT_SECONDS" default:"15"`
}

// RequestTimeout returns the per-request deadline for external calls.
func (s ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// OpsConfig contains the operational listener configuration
type OpsConfig struct {
	Port int `envconfig:"OPS_PORT" default:"9090"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// SlogLevel converts the configured level name to a slog level.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WeatherConfig contains settings for the upstream weather service.
// The API key may be left empty here and resolved through the
// configured secret source at startup instead.
type WeatherConfig struct {
	APIKey            string  `envconfig:"WEATHER_API_KEY"`
	BaseURL           string  `envconfig:"WEATHER_API_BASE_URL" default:"https://api.openweathermap.org"`
	TimeoutSeconds    int     `envconfig:"WEATHER_API_TIMEOUT_SECONDS" default:"10"`
	RequestsPerSecond float64 `envconfig:"WEATHER_API_REQUESTS_PER_SECOND" default:"0"`
}

// Timeout returns the HTTP client timeout for the weather service.
func (w WeatherConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

// GeoConfig contains settings for the IP geolocation service
type GeoConfig struct {
	BaseURL           string  `envconfig:"GEO_API_BASE_URL" default:"http://ip-api.com"`
	TimeoutSeconds    int     `envconfig:"GEO_API_TIMEOUT_SECONDS" default:"5"`
	RequestsPerSecond float64 `envconfig:"GEO_API_REQUESTS_PER_SECOND" default:"0"`
}

// Timeout returns the HTTP client timeout for the geolocation service.
func (g GeoConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// SecretsConfig selects where the API key is resolved from when it is
// not present in the environment.
type SecretsConfig struct {
	Source           string `envconfig:"SECRET_SOURCE" default:"env"`
	APIKeyName       string `envconfig:"SECRET_API_KEY_NAME" default:"WEATHER_API_KEY"`
	SSMParameterName string `envconfig:"SECRET_SSM_PARAMETER_NAME"`
	SSMRegion        string `envconfig:"SECRET_SSM_REGION"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the whole configuration section by section
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Ops.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Geo.Validate(); err != nil {
		return err
	}
	if err := c.Secrets.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if s.RequestTimeoutSeconds < 1 {
		return errors.NewConfigurationError("REQUEST_TIMEOUT_SECONDS must be at least 1", nil)
	}
	return nil
}

// Validate checks the operational listener configuration
func (o *OpsConfig) Validate() error {
	if o.Port < 1 || o.Port > 65535 {
		return errors.NewConfigurationError("OPS_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// Validate checks logging configuration
func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
		return nil
	}
	return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
}

// Validate checks weather service configuration. The API key is
// validated separately after secret resolution.
func (w *WeatherConfig) Validate() error {
	if w.BaseURL == "" {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.TimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_API_TIMEOUT_SECONDS must be at least 1", nil)
	}
	if w.RequestsPerSecond < 0 {
		return errors.NewConfigurationError("WEATHER_API_REQUESTS_PER_SECOND cannot be negative", nil)
	}
	return nil
}

// Validate checks geolocation service configuration
func (g *GeoConfig) Validate() error {
	if g.BaseURL == "" {
		return errors.NewConfigurationError("GEO_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(g.BaseURL, "http://") && !strings.HasPrefix(g.BaseURL, "https://") {
		return errors.NewConfigurationError("GEO_API_BASE_URL must start with http:// or https://", nil)
	}
	if g.TimeoutSeconds < 1 {
		return errors.NewConfigurationError("GEO_API_TIMEOUT_SECONDS must be at least 1", nil)
	}
	if g.RequestsPerSecond < 0 {
		return errors.NewConfigurationError("GEO_API_REQUESTS_PER_SECOND cannot be negative", nil)
	}
	return nil
}

// Validate checks the secret source configuration
func (s *SecretsConfig) Validate() error {
	switch s.Source {
	case "env":
	case "ssm":
		if s.SSMParameterName == "" {
			return errors.NewConfigurationError("SECRET_SSM_PARAMETER_NAME is required when SECRET_SOURCE is ssm", nil)
		}
		if s.SSMRegion == "" {
			return errors.NewConfigurationError("SECRET_SSM_REGION is required when SECRET_SOURCE is ssm", nil)
		}
	default:
		return errors.NewConfigurationError("SECRET_SOURCE must be one of: env, ssm", nil)
	}
	if s.APIKeyName == "" {
		return errors.NewConfigurationError("SECRET_API_KEY_NAME cannot be empty", nil)
	}
	return nil
}
