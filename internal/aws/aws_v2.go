// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nmctl/nmctl/internal/log"
)

type options struct {
	profile        string
	region         string
	fallbackRegion string
	appID          string
	maxAttempts    int
	retryer        func() awsv2.Retryer
}

// Option customizes how AWS config is loaded. Without options the shell's
// chain applies (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS).
type Option func(*options)

func (o options) loadOptions() []func(*config.LoadOptions) error {
	var lo []func(*config.LoadOptions) error
	if o.profile != "" {
		lo = append(lo, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		lo = append(lo, config.WithRegion(o.region))
	}
	if o.appID != "" {
		lo = append(lo, config.WithAppID(o.appID))
	}

	// An explicit retryer beats an attempt count.
	retryer := o.retryer
	if retryer == nil && o.maxAttempts > 0 {
		attempts := o.maxAttempts
		retryer = func() awsv2.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), attempts)
		}
	}
	if retryer != nil {
		lo = append(lo, config.WithRetryer(retryer))
	}
	return lo
}

// LoadAWSConfig loads AWS SDK v2 config from the shell's chain with the
// given overrides applied.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("aws opts: profile=%s, region=%s, maxAttempts=%d", o.profile, o.region, o.maxAttempts)

	cfg, err := config.LoadDefaultConfig(ctx, o.loadOptions()...)
	if err != nil {
		log.Debugf("aws config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	if cfg.Region == "" && o.fallbackRegion != "" {
		log.Debugf("no region configured, using %s", o.fallbackRegion)
		cfg.Region = o.fallbackRegion
	}
	log.Debugf("aws config loaded: region=%s", cfg.Region)
	return cfg, nil
}

// NewNetworkManager constructs a Network Manager client from the provided
// config. Additional service options can be supplied via optFns.
func NewNetworkManager(cfg awsv2.Config, optFns ...func(*nmv2.Options)) *nmv2.Client {
	client := nmv2.NewFromConfig(cfg, optFns...)
	log.Debugf("networkmanager client created")
	return client
}

// NewS3 constructs a v2 S3 client from the provided config. Additional service
// options can be supplied via optFns.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	client := s3v2.NewFromConfig(cfg, optFns...)
	log.Debugf("s3 client created")
	return client
}

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithFallbackRegion is used when neither an override nor the chain yields a
// region.
func WithFallbackRegion(region string) Option {
	return func(o *options) { o.fallbackRegion = region }
}

// WithAppID tags requests' user agent with id.
func WithAppID(id string) Option {
	return func(o *options) { o.appID = id }
}

// WithMaxAttempts caps the standard retryer at n attempts. Ignored when n <= 0
// or when WithRetryer is also given.
func WithMaxAttempts(n int) Option {
	return func(o *options) { o.maxAttempts = n }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// WithEndpoint points the Network Manager client at a custom base endpoint,
// e.g. a local mock of the service. An empty url leaves resolution alone.
func WithEndpoint(url string) func(*nmv2.Options) {
	return func(o *nmv2.Options) {
		if url != "" {
			o.BaseEndpoint = awsv2.String(url)
		}
	}
}
