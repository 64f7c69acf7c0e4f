// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateAWSEnv keeps the developer's shared config out of the tests.
func isolateAWSEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent/credentials")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
}

func TestOptions(t *testing.T) {
	var opts options
	WithProfile("network-admin")(&opts)
	WithRegion("us-west-2")(&opts)
	WithMaxAttempts(7)(&opts)
	WithFallbackRegion("us-west-2")(&opts)
	WithAppID("nmctl")(&opts)
	WithRetryer(func() awsv2.Retryer { return retry.NewStandard() })(&opts)

	assert.Equal(t, "network-admin", opts.profile)
	assert.Equal(t, "us-west-2", opts.region)
	assert.Equal(t, 7, opts.maxAttempts)
	assert.Equal(t, "us-west-2", opts.fallbackRegion)
	assert.Equal(t, "nmctl", opts.appID)
	assert.Len(t, opts.loadOptions(), 4)
	require.NotNil(t, opts.retryer)
	assert.NotNil(t, opts.retryer())
}

func TestLoadAWSConfig_WithRegion(t *testing.T) {
	isolateAWSEnv(t)

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{name: "single region", opts: []Option{WithRegion("us-west-2")}, want: "us-west-2"},
		{name: "later option wins", opts: []Option{WithRegion("us-east-1"), WithRegion("eu-west-1")}, want: "eu-west-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAWSConfig(context.Background(), tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Region)
		})
	}
}

func TestLoadAWSConfig_MaxAttempts(t *testing.T) {
	isolateAWSEnv(t)

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-west-2"), WithMaxAttempts(5))
	require.NoError(t, err)
	require.NotNil(t, cfg.Retryer)
	assert.Equal(t, 5, cfg.Retryer().MaxAttempts())
}

func TestLoadAWSConfig_RetryerBeatsMaxAttempts(t *testing.T) {
	isolateAWSEnv(t)

	cfg, err := LoadAWSConfig(
		context.Background(),
		WithRegion("us-west-2"),
		WithMaxAttempts(9),
		WithRetryer(func() awsv2.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), 2)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Retryer().MaxAttempts())
}

func TestLoadAWSConfig_FallbackRegion(t *testing.T) {
	isolateAWSEnv(t)

	cfg, err := LoadAWSConfig(context.Background(), WithFallbackRegion("us-west-2"))
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)

	cfg, err = LoadAWSConfig(context.Background(), WithRegion("eu-west-1"), WithFallbackRegion("us-west-2"))
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region, "an explicit region beats the fallback")
}

func TestLoadAWSConfig_AppID(t *testing.T) {
	isolateAWSEnv(t)

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-west-2"), WithAppID("nmctl"))
	require.NoError(t, err)
	assert.Equal(t, "nmctl", cfg.AppID)
}

func TestLoadAWSConfig_MissingProfile(t *testing.T) {
	isolateAWSEnv(t)

	_, err := LoadAWSConfig(context.Background(), WithProfile("no-such-profile"))
	assert.Error(t, err)
}

func TestNewNetworkManager_Endpoint(t *testing.T) {
	isolateAWSEnv(t)

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-west-2"))
	require.NoError(t, err)

	client := NewNetworkManager(cfg, WithEndpoint("http://localhost:4566"))
	require.NotNil(t, client)
	assert.Equal(t, "http://localhost:4566", awsv2.ToString(client.Options().BaseEndpoint))

	client = NewNetworkManager(cfg, WithEndpoint(""))
	assert.Nil(t, client.Options().BaseEndpoint)
}

func TestWithEndpoint(t *testing.T) {
	var o nmv2.Options
	WithEndpoint("https://example.test")(&o)
	assert.Equal(t, "https://example.test", awsv2.ToString(o.BaseEndpoint))
}

func TestNewS3(t *testing.T) {
	isolateAWSEnv(t)

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-east-1"))
	require.NoError(t, err)
	assert.NotNil(t, NewS3(cfg))
}
