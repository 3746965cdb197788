package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	apperrors "github.com/enviark/weather/errors"
)

// ssmClient is the subset of the SSM SDK client used by SSMSource.
// The interface enables testing with a mock client.
type ssmClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SSMSource resolves secrets from AWS SSM Parameter Store. Parameters
// are stored as SecureString values and retrieved with decryption.
type SSMSource struct {
	region string

	// client is created lazily from the default AWS config unless
	// injected for tests.
	client ssmClient
}

// NewSSMSource creates a Parameter Store source for the given region.
func NewSSMSource(region string) *SSMSource {
	return &SSMSource{region: region}
}

func newSSMSourceWithClient(region string, client ssmClient) *SSMSource {
	return &SSMSource{region: region, client: client}
}

func (s *SSMSource) ensureClient(ctx context.Context) error {
	if s.client != nil {
		return nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(s.region))
	if err != nil {
		return apperrors.NewConfigurationError(
			fmt.Sprintf("loading AWS config for SSM (region=%s)", s.region), err)
	}

	s.client = ssm.NewFromConfig(cfg)
	return nil
}

// Get retrieves one decrypted parameter value by its full path.
func (s *SSMSource) Get(ctx context.Context, name string) (string, error) {
	if err := s.ensureClient(ctx); err != nil {
		return "", err
	}

	output, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", apperrors.NewConfigurationError(
			fmt.Sprintf("SSM GetParameter failed for %q", name), err)
	}

	if output.Parameter == nil || output.Parameter.Value == nil || *output.Parameter.Value == "" {
		return "", apperrors.NewConfigurationError(
			fmt.Sprintf("SSM parameter %q has no value", name), nil)
	}

	return *output.Parameter.Value, nil
}
