// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/networkmanager/types"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/document"
	"github.com/nmctl/nmctl/internal/log"
	"github.com/nmctl/nmctl/internal/meta"
)

// Binder reads set flags into SDK input values. Every method returns the zero
// value (nil for pointers and slices) when the flag was not given, so unset
// parameters are never sent. The first failure is kept and reported by Err.
type Binder struct {
	ctx  context.Context
	cmd  *cli.Command
	meta meta.Meta
	err  error
}

// NewBinder returns a Binder over cmd's flags.
func NewBinder(ctx context.Context, cmd *cli.Command, m meta.Meta) *Binder {
	return &Binder{ctx: ctx, cmd: cmd, meta: m}
}

// Err returns the first binding failure.
func (b *Binder) Err() error {
	return b.err
}

// Fail records err unless an earlier failure was recorded.
func (b *Binder) Fail(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

// Missing warns that a required parameter bound from flag was not given.
func (b *Binder) Missing(flag string) {
	warnMissing(b.cmd, flag)
}

// IsSet reports whether the flag was given.
func (b *Binder) IsSet(name string) bool {
	return b.cmd.IsSet(name)
}

func (b *Binder) String(name string) *string {
	if !b.cmd.IsSet(name) {
		return nil
	}
	return awsv2.String(b.cmd.String(name))
}

func (b *Binder) Int32(name string) *int32 {
	if !b.cmd.IsSet(name) {
		return nil
	}
	return awsv2.Int32(b.cmd.Int32(name))
}

func (b *Binder) Int64(name string) *int64 {
	if !b.cmd.IsSet(name) {
		return nil
	}
	return awsv2.Int64(b.cmd.Int64(name))
}

// Strings returns the values of a list flag with blanks dropped.
func (b *Binder) Strings(name string) []string {
	if !b.cmd.IsSet(name) {
		return nil
	}
	var out []string
	for _, v := range b.cmd.StringSlice(name) {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Tags returns the --tag values. A bare key yields an empty value.
func (b *Binder) Tags() []types.Tag {
	var tags []types.Tag
	for _, kv := range b.Strings("tag") {
		key, value, _ := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			b.Fail(fmt.Errorf("invalid --tag %q, expected key=value", kv))
			return nil
		}
		tags = append(tags, types.Tag{Key: awsv2.String(key), Value: awsv2.String(value)})
	}
	return tags
}

// Pairs parses repeated name=value flags into a multimap.
func (b *Binder) Pairs(name string) map[string][]string {
	values := b.Strings(name)
	if len(values) == 0 {
		return nil
	}
	out := map[string][]string{}
	for _, kv := range values {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			b.Fail(fmt.Errorf("invalid --%s %q, expected name=value", name, kv))
			return nil
		}
		out[k] = append(out[k], v)
	}
	return out
}

// Document loads a policy document flag from its literal, file:// or s3://
// source.
func (b *Binder) Document(name string) *string {
	if !b.cmd.IsSet(name) {
		return nil
	}

	var newGetter document.GetterFactory
	if b.meta.NewObjectGetter != nil {
		newGetter = func(ctx context.Context) (document.ObjectGetter, error) {
			return b.meta.NewObjectGetter(ctx, SettingsFrom(b.cmd))
		}
	}

	doc, err := document.Load(b.ctx, b.cmd.String(name), newGetter)
	if err != nil {
		b.Fail(fmt.Errorf("--%s: %w", name, err))
		return nil
	}
	return awsv2.String(doc)
}

// ClientToken returns --client-token, or a fresh UUID when it was not given.
func (b *Binder) ClientToken() *string {
	if token := b.String("client-token"); token != nil {
		return token
	}
	token := uuid.NewString()
	log.Infof("generated client token: %s", token)
	return awsv2.String(token)
}

// Location binds the --location-* flags.
func (b *Binder) Location() *types.Location {
	loc := types.Location{
		Address:   b.String("location-address"),
		Latitude:  b.String("location-latitude"),
		Longitude: b.String("location-longitude"),
	}
	if loc.Address == nil && loc.Latitude == nil && loc.Longitude == nil {
		return nil
	}
	return &loc
}

// Bandwidth binds the --bandwidth-* flags.
func (b *Binder) Bandwidth() *types.Bandwidth {
	bw := types.Bandwidth{
		DownloadSpeed: b.Int32("bandwidth-download-speed"),
		UploadSpeed:   b.Int32("bandwidth-upload-speed"),
	}
	if bw.DownloadSpeed == nil && bw.UploadSpeed == nil {
		return nil
	}
	return &bw
}

// AWSLocation binds the --aws-location-* flags.
func (b *Binder) AWSLocation() *types.AWSLocation {
	loc := types.AWSLocation{
		SubnetArn: b.String("aws-location-subnet-arn"),
		Zone:      b.String("aws-location-zone"),
	}
	if loc.SubnetArn == nil && loc.Zone == nil {
		return nil
	}
	return &loc
}

func bindEnum[T ~string](b *Binder, name string) T {
	if !b.cmd.IsSet(name) {
		return ""
	}
	return T(b.cmd.String(name))
}

func bindEnums[T ~string](b *Binder, name string) []T {
	values := b.Strings(name)
	if len(values) == 0 {
		return nil
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}

// errUnknownFilter is returned by Augment functions for keys they cannot bind.
var errUnknownFilter = errors.New("unsupported server-side filter")

func unknownFilter(key string, supported ...string) error {
	return fmt.Errorf("%w _%s, supported: %s", errUnknownFilter, key, strings.Join(supported, ", "))
}
