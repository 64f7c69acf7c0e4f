// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package nm

import (
	"errors"
	"fmt"
	"net"

	"github.com/aws/smithy-go"
)

// ErrorContext carries input context for improving SDK error messages.
type ErrorContext struct {
	Operation string // e.g. "GetLinks"
	Region    string
}

// NameResolutionError reports that the service endpoint could not be
// resolved, which almost always means the region is wrong.
type NameResolutionError struct {
	Operation string
	Region    string
	Host      string
	Err       error
}

func (e *NameResolutionError) Error() string {
	return fmt.Sprintf(
		"%s: name resolution failure attempting to reach service in region %q "+
			"(as supplied to --region or from the configured default): %s",
		nonEmpty(e.Operation, "request"), e.Region, nonEmpty(e.Host, "<unknown host>"))
}

func (e *NameResolutionError) Unwrap() error { return e.Err }

// Friendly rewrites a DNS failure anywhere in err's chain into a
// NameResolutionError. Every other error, including service exceptions, is
// returned unchanged.
func Friendly(err error, ctx ErrorContext) error {
	if err == nil {
		return nil
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &NameResolutionError{
			Operation: ctx.Operation,
			Region:    ctx.Region,
			Host:      dnsErr.Name,
			Err:       err,
		}
	}

	return err
}

// ErrorCode returns the service exception code (e.g.
// "ResourceNotFoundException") carried by err, or "" for client side errors.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
