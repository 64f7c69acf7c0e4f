// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmctl/nmctl/internal/config"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		injected span
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"nmctl", "get-sites"},
			expected: []string{"nmctl", "get-sites"},
		},
		{
			name:     "no set leaves args alone",
			args:     []string{"nmctl", "get-sites", "--output", "json", "--output", "text"},
			expected: []string{"nmctl", "get-sites", "--output", "json", "--output", "text"},
		},
		{
			name:     "repeated tags kept",
			args:     []string{"nmctl", "create-site", "--global-network-id", "gn-1", "--tag", "env=prod", "--tag", "team=net"},
			expected: []string{"nmctl", "create-site", "--global-network-id", "gn-1", "--tag", "env=prod", "--tag", "team=net"},
		},
		{
			name:     "explicit flag overrides set",
			args:     []string{"nmctl", "get-sites", "--output", "json", "--titles", "--output", "text"},
			injected: span{lo: 2, hi: 5},
			expected: []string{"nmctl", "get-sites", "--titles", "--output", "text"},
		},
		{
			name:     "equals syntax overrides set",
			args:     []string{"nmctl", "get-sites", "--output=json", "--titles", "--output=text"},
			injected: span{lo: 2, hi: 3},
			expected: []string{"nmctl", "get-sites", "--titles", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax",
			args:     []string{"nmctl", "get-sites", "--output=json", "--output", "text"},
			injected: span{lo: 2, hi: 3},
			expected: []string{"nmctl", "get-sites", "--output", "text"},
		},
		{
			name:     "set boolean dropped when given explicitly",
			args:     []string{"nmctl", "get-sites", "--titles", "--color", "--titles"},
			injected: span{lo: 2, hi: 3},
			expected: []string{"nmctl", "get-sites", "--color", "--titles"},
		},
		{
			name:     "repeated slice flags in set and explicit",
			args:     []string{"nmctl", "get-links", "--link-ids", "l-1", "--link-ids", "l-2", "--tag", "a=1", "--tag", "b=2"},
			injected: span{lo: 2, hi: 6},
			expected: []string{"nmctl", "get-links", "--link-ids", "l-1", "--link-ids", "l-2", "--tag", "a=1", "--tag", "b=2"},
		},
		{
			name:     "explicit repeats survive while set copy is dropped",
			args:     []string{"nmctl", "create-site", "--tag", "env=dev", "--tag", "env=prod", "--tag", "team=net"},
			injected: span{lo: 2, hi: 4},
			expected: []string{"nmctl", "create-site", "--tag", "env=prod", "--tag", "team=net"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"nmctl", "get-sites", "--color", "--no-color"},
			injected: span{lo: 2, hi: 3},
			expected: []string{"nmctl", "get-sites", "--color", "--no-color"},
		},
		{
			name:     "everything after -- untouched",
			args:     []string{"nmctl", "get-sites", "-o", "json", "--", "-o", "text"},
			injected: span{lo: 2, hi: 4},
			expected: []string{"nmctl", "get-sites", "-o", "json", "--", "-o", "text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deduplicateFlags(tt.args, tt.injected))
		})
	}
}

func TestDeduplicateFlagsPreservesOrder(t *testing.T) {
	args := []string{"nmctl", "get-sites", "--alpha", "--beta", "--gamma"}
	assert.Equal(t, args, deduplicateFlags(args, span{lo: 2, hi: 3}))
}

func TestInjectConfigSet(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		insertIdx int
		entries   []string
		expected  []string
	}{
		{
			name:      "empty config returns args unchanged",
			args:      []string{"nmctl", "get-sites", "--titles"},
			insertIdx: 2,
			expected:  []string{"nmctl", "get-sites", "--titles"},
		},
		{
			name:      "single entry injected",
			args:      []string{"nmctl", "get-sites", "--titles"},
			insertIdx: 2,
			entries:   []string{"--color"},
			expected:  []string{"nmctl", "get-sites", "--color", "--titles"},
		},
		{
			name:      "multi-word entry split",
			args:      []string{"nmctl", "get-sites", "--titles"},
			insertIdx: 2,
			entries:   []string{"--output   text"},
			expected:  []string{"nmctl", "get-sites", "--output", "text", "--titles"},
		},
		{
			name:      "insert at index 3",
			args:      []string{"nmctl", "get-sites", "--titles", "--color"},
			insertIdx: 3,
			entries:   []string{"--global-network-id global-network-01"},
			expected:  []string{"nmctl", "get-sites", "--titles", "--global-network-id", "global-network-01", "--color"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, injectConfigSet(tt.args, tt.entries, tt.insertIdx))
		})
	}
}

func TestProcessSetOnly(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "nmctl.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`get-sites:
  prod:
    - --global-network-id global-network-01
    - --output json
`), 0o600))
	t.Setenv(config.EnvFile, cfg)
	_, err := config.Load()
	require.NoError(t, err)

	t.Run("set expanded in place", func(t *testing.T) {
		got := processCommandArgs([]string{"nmctl", "get-sites", "@prod", "--titles"})
		assert.Equal(t, []string{"nmctl", "get-sites", "--global-network-id", "global-network-01", "--output", "json", "--titles"}, got)
	})

	t.Run("explicit flag after set wins", func(t *testing.T) {
		got := processCommandArgs([]string{"nmctl", "get-sites", "@prod", "--output", "text"})
		assert.Equal(t, []string{"nmctl", "get-sites", "--global-network-id", "global-network-01", "--output", "text"}, got)
	})

	t.Run("injected range reported", func(t *testing.T) {
		got, injected := processSetOnly([]string{"nmctl", "get-sites", "--titles", "@prod"})
		assert.Equal(t, []string{"nmctl", "get-sites", "--titles", "--global-network-id", "global-network-01", "--output", "json"}, got)
		assert.Equal(t, span{lo: 3, hi: 7}, injected)
	})

	t.Run("unknown set dropped", func(t *testing.T) {
		got, injected := processSetOnly([]string{"nmctl", "get-sites", "@nope", "--titles"})
		assert.Equal(t, []string{"nmctl", "get-sites", "--titles"}, got)
		assert.Equal(t, span{}, injected)
	})

	t.Run("explicit tags all reach the command", func(t *testing.T) {
		args := []string{"nmctl", "create-site", "--global-network-id", "gn-1", "--tag", "env=prod", "--tag", "team=net"}
		assert.Equal(t, args, processCommandArgs(args))
	})

	t.Run("completion untouched", func(t *testing.T) {
		args := []string{"nmctl", "completion", "@prod"}
		assert.Equal(t, args, processCommandArgs(args))
	})
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"nmctl", "--help"}, handleNakedCommand([]string{"nmctl"}))
	assert.Equal(t, []string{"nmctl", "get-sites"}, handleNakedCommand([]string{"nmctl", "get-sites"}))
}
