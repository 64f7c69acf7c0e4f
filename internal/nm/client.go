// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package nm

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"

	"github.com/nmctl/nmctl/internal/aws"
	"github.com/nmctl/nmctl/internal/document"
)

// HomeRegion is where the Network Manager control plane lives. It is used
// when neither a flag, the environment nor a profile supplies a region.
const HomeRegion = "us-west-2"

// Settings are the connection parameters shared by every command.
type Settings struct {
	Region      string
	Profile     string
	EndpointURL string
	MaxAttempts int
}

// ClientFactory builds a client for the given settings. It also returns the
// region that was finally resolved so errors can name it.
type ClientFactory func(ctx context.Context, s Settings) (API, string, error)

// ObjectGetterFactory builds the S3 client that reads s3:// documents.
type ObjectGetterFactory func(ctx context.Context, s Settings) (document.ObjectGetter, error)

// NewClient is the production ClientFactory.
func NewClient(ctx context.Context, s Settings) (API, string, error) {
	cfg, err := loadConfig(ctx, s)
	if err != nil {
		return nil, "", err
	}
	return aws.NewNetworkManager(cfg, aws.WithEndpoint(s.EndpointURL)), cfg.Region, nil
}

// NewObjectGetter is the production ObjectGetterFactory. The endpoint URL is
// not applied, it belongs to Network Manager.
func NewObjectGetter(ctx context.Context, s Settings) (document.ObjectGetter, error) {
	cfg, err := loadConfig(ctx, s)
	if err != nil {
		return nil, err
	}
	return aws.NewS3(cfg), nil
}

func loadConfig(ctx context.Context, s Settings) (awsv2.Config, error) {
	opts := []aws.Option{
		aws.WithMaxAttempts(s.MaxAttempts),
		aws.WithFallbackRegion(HomeRegion),
		aws.WithAppID("nmctl"),
	}
	if s.Profile != "" {
		opts = append(opts, aws.WithProfile(s.Profile))
	}
	if s.Region != "" {
		opts = append(opts, aws.WithRegion(s.Region))
	}

	return aws.LoadAWSConfig(ctx, opts...)
}
