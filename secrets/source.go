// Package secrets resolves named secret values for startup
// configuration. Two sources exist: the process environment for local
// development, and AWS SSM Parameter Store for deployed environments.
package secrets

import (
	"context"
	"fmt"
	"os"

	apperrors "github.com/enviark/weather/errors"
)

// Source fetches one named secret value.
type Source interface {
	Get(ctx context.Context, name string) (string, error)
}

// EnvSource resolves secrets from the process environment.
type EnvSource struct{}

// NewEnvSource creates an environment-backed secret source.
func NewEnvSource() *EnvSource {
	return &EnvSource{}
}

// Get returns the value of the named environment variable. An unset
// or empty variable is a configuration error.
func (s *EnvSource) Get(_ context.Context, name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", apperrors.NewConfigurationError(
			fmt.Sprintf("secret %q is not set in the environment", name), nil)
	}
	return value, nil
}
