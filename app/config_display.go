package app

import (
	"log"
	"os"
	"sort"
	"strings"

	"github.com/enviark/weather/config"
)

// ConfigDisplayer handles configuration and environment variable display
type ConfigDisplayer struct{}

// NewConfigDisplayer creates a new configuration displayer
func NewConfigDisplayer() *ConfigDisplayer {
	return &ConfigDisplayer{}
}

// PrintConfig prints all fields in the configuration
func (cd *ConfigDisplayer) PrintConfig(cfg *config.Config) {
	log.Println("==== APPLICATION CONFIGURATION ====")

	log.Printf("SERVER:\n")
	log.Printf("  Port: %d\n", cfg.Server.Port)
	log.Printf("  Request Timeout: %s\n", cfg.Server.RequestTimeout())

	log.Printf("\nOPS:\n")
	log.Printf("  Port: %d\n", cfg.Ops.Port)

	log.Printf("\nLOG:\n")
	log.Printf("  Level: %s\n", cfg.Log.Level)

	log.Printf("\nWEATHER API:\n")
	log.Printf("  API Key: %s\n", cd.maskString(cfg.Weather.APIKey))
	log.Printf("  Base URL: %s\n", cfg.Weather.BaseURL)
	log.Printf("  Timeout: %s\n", cfg.Weather.Timeout())
	log.Printf("  Requests/s: %g\n", cfg.Weather.RequestsPerSecond)

	log.Printf("\nGEO API:\n")
	log.Printf("  Base URL: %s\n", cfg.Geo.BaseURL)
	log.Printf("  Timeout: %s\n", cfg.Geo.Timeout())
	log.Printf("  Requests/s: %g\n", cfg.Geo.RequestsPerSecond)

	log.Printf("\nSECRETS:\n")
	log.Printf("  Source: %s\n", cfg.Secrets.Source)
	log.Printf("  API Key Name: %s\n", cfg.Secrets.APIKeyName)
	if cfg.Secrets.Source == "ssm" {
		log.Printf("  SSM Parameter: %s\n", cfg.Secrets.SSMParameterName)
		log.Printf("  SSM Region: %s\n", cfg.Secrets.SSMRegion)
	}

	log.Println("===================================")
}

// PrintAllEnvVars prints all environment variables available to the application
func (cd *ConfigDisplayer) PrintAllEnvVars() {
	log.Println("==== ENVIRONMENT VARIABLES ====")

	envVars := os.Environ()
	sort.Strings(envVars)

	for _, env := range envVars {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}

		key := pair[0]
		value := pair[1]

		if cd.isSensitive(key) {
			value = cd.maskString(value)
		}

		log.Printf("%s=%s\n", key, value)
	}

	log.Println("===============================")
}

// maskString masks sensitive information like passwords and API keys
func (cd *ConfigDisplayer) maskString(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	visible := len(s) / 4
	return s[:visible] + strings.Repeat("*", len(s)-visible)
}

// isSensitive checks if an environment variable key is considered sensitive
func (cd *ConfigDisplayer) isSensitive(key string) bool {
	sensitiveKeys := []string{
		"API_KEY", "PASSWORD", "SECRET", "TOKEN", "KEY", "PASS", "PWD",
	}

	key = strings.ToUpper(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(key, sensitive) {
			return true
		}
	}

	return false
}
