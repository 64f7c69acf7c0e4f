// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package nm

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendly_DNS(t *testing.T) {
	dnsErr := &net.DNSError{Err: "no such host", Name: "networkmanager.mars-1.amazonaws.com", IsNotFound: true}
	wrapped := &smithy.OperationError{
		ServiceID:     "NetworkManager",
		OperationName: "GetLinks",
		Err:           fmt.Errorf("dial tcp: %w", dnsErr),
	}

	err := Friendly(wrapped, ErrorContext{Operation: "GetLinks", Region: "mars-1"})

	var nre *NameResolutionError
	require.True(t, errors.As(err, &nre))
	assert.Equal(t, "networkmanager.mars-1.amazonaws.com", nre.Host)
	assert.Contains(t, err.Error(), `region "mars-1"`)
	assert.Contains(t, err.Error(), "GetLinks: name resolution failure")

	// The original chain is still reachable.
	var inner *net.DNSError
	assert.True(t, errors.As(err, &inner))
	var opErr *smithy.OperationError
	assert.True(t, errors.As(err, &opErr))
}

func TestFriendly_PassThrough(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "link not found"}

	tests := []struct {
		name string
		err  error
	}{
		{name: "service exception", err: apiErr},
		{name: "plain error", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Friendly(tt.err, ErrorContext{Operation: "GetLinks", Region: "us-west-2"})
			assert.Same(t, tt.err, got)
		})
	}

	assert.NoError(t, Friendly(nil, ErrorContext{}))
}

func TestErrorCode(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "ValidationException", Message: "bad"}
	assert.Equal(t, "ValidationException", ErrorCode(fmt.Errorf("call: %w", apiErr)))
	assert.Equal(t, "", ErrorCode(errors.New("boom")))
}

func TestNameResolutionError_Defaults(t *testing.T) {
	err := &NameResolutionError{Region: "us-west-2"}
	assert.Contains(t, err.Error(), "request: name resolution failure")
	assert.Contains(t, err.Error(), "<unknown host>")
}
