// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nmctl/nmctl/internal/log"
)

const (
	filePrefix = "file://"
	s3Prefix   = "s3://"
)

// ObjectGetter is the part of the S3 client needed to fetch a document.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// GetterFactory builds an ObjectGetter lazily, so commands that never see an
// s3:// document never load AWS config for S3.
type GetterFactory func(ctx context.Context) (ObjectGetter, error)

// Load resolves a document spec into its text. A spec is either literal text,
// file://path or s3://bucket/key. JSON documents are validated and compacted
// so that the service receives a canonical body.
func Load(ctx context.Context, spec string, newGetter GetterFactory) (string, error) {
	var (
		raw []byte
		err error
	)

	switch {
	case spec == "":
		return "", errors.New("empty document")
	case strings.HasPrefix(spec, filePrefix):
		path := strings.TrimPrefix(spec, filePrefix)
		raw, err = os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read document: %w", err)
		}
		log.Debugf("document read: path=%s, len=%d", path, len(raw))
	case strings.HasPrefix(spec, s3Prefix):
		raw, err = loadS3(ctx, spec, newGetter)
		if err != nil {
			return "", err
		}
	default:
		raw = []byte(spec)
	}

	raw = bytes.TrimSpace(raw)
	if !json.Valid(raw) {
		return "", fmt.Errorf("document is not valid JSON (%s)", describe(spec))
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", fmt.Errorf("failed to compact document: %w", err)
	}
	return buf.String(), nil
}

// ParseS3URL splits s3://bucket/key into its parts.
func ParseS3URL(spec string) (bucket string, key string, err error) {
	rest := strings.TrimPrefix(spec, s3Prefix)
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 location %q, expected s3://bucket/key", spec)
	}
	return bucket, key, nil
}

func loadS3(ctx context.Context, spec string, newGetter GetterFactory) ([]byte, error) {
	bucket, key, err := ParseS3URL(spec)
	if err != nil {
		return nil, err
	}
	if newGetter == nil {
		return nil, errors.New("no S3 client available for " + spec)
	}

	getter, err := newGetter(ctx)
	if err != nil {
		return nil, err
	}

	out, err := getter.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", spec, err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", spec, err)
	}
	log.Debugf("document fetched: bucket=%s, key=%s, len=%d", bucket, key, len(raw))
	return raw, nil
}

// describe names the source of a spec for error messages without echoing a
// whole literal document.
func describe(spec string) string {
	switch {
	case strings.HasPrefix(spec, filePrefix), strings.HasPrefix(spec, s3Prefix):
		return spec
	default:
		return "literal"
	}
}
