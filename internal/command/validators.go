// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// FlagValidatorType checks a single flag value.
type FlagValidatorType func(any) error

// FlagValidators runs validators in order and returns the first failure.
func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

var outputFormats = []string{"text", "json", "raw", "yaml"}

func OutputValidator(value any) error {
	if s, ok := value.(string); !ok || !slices.Contains(outputFormats, s) {
		return fmt.Errorf("must be one of %v", outputFormats)
	}
	return nil
}

// ShellValidator accepts the shells completion scripts are generated for.
func ShellValidator(value any) error {
	var shells = []string{"bash", "zsh"}
	if s, ok := value.(string); !ok || !slices.Contains(shells, s) {
		return fmt.Errorf("unsupported shell %v, must be one of %v", value, shells)
	}
	return nil
}

// Page sizes the Network Manager list APIs accept.
const (
	minPageSize = 1
	maxPageSize = 500
)

// PageSizeValidator rejects --max-results outside what the service accepts.
func PageSizeValidator(value any) error {
	n, ok := value.(int32)
	if !ok || n < minPageSize || n > maxPageSize {
		return fmt.Errorf("must be between %d and %d", minPageSize, maxPageSize)
	}
	return nil
}

// Tag keys are at most 128 characters and values at most 256.
const (
	maxTagKey   = 128
	maxTagValue = 256
)

// TagValidator checks each key=value of a --tag flag.
func TagValidator(value any) error {
	tags, ok := value.([]string)
	if !ok {
		return fmt.Errorf("tags must be a list, got %T", value)
	}
	for _, kv := range tags {
		key, val, _ := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		switch {
		case key == "":
			return fmt.Errorf("invalid --tag %q, expected key=value", kv)
		case utf8.RuneCountInString(key) > maxTagKey:
			return fmt.Errorf("tag key %q longer than %d", key, maxTagKey)
		case utf8.RuneCountInString(val) > maxTagValue:
			return fmt.Errorf("tag value for %q longer than %d", key, maxTagValue)
		case strings.HasPrefix(strings.ToLower(key), "aws:"):
			return fmt.Errorf("tag key %q uses the reserved aws: prefix", key)
		}
	}
	return nil
}
