// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig points NMCTL_CFG_FILE at a testdata file, loads it and runs fn.
// The global Config is reset afterwards.
func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testFile))
	require.NoError(t, err)
	t.Setenv(EnvFile, absPath)

	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, _ = Load()
	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "us-west-2", cfg.Data["region"])
				assert.Equal(t, "network-admin", cfg.Data["profile"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				cache, ok := cfg.Data["cache"].(map[string]interface{})
				require.True(t, ok, "cache should be a map")
				assert.Equal(t, 120, cache["ttl"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Empty(t, cfg.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, tt.testFile, func(t *testing.T) {
				cfg, err := Load()
				require.NoError(t, err)
				tt.checkFunc(t, cfg)
			})
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Setenv(EnvFile, "/nonexistent/nmctl.yaml")
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	cfg, err := Load(filepath.Join("testdata", "simple.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Data["region"])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		errMsg string
	}{
		{name: "missing file", env: "/nonexistent/path/nmctl.yaml", errMsg: "config file not found"},
		{name: "directory", env: filepath.Join("testdata", "adir"), errMsg: "points to a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvFile, tt.env)
			Config = Type{}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGetString(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		got, err := GetString("region")
		assert.NoError(t, err)
		assert.Equal(t, "us-west-2", got)

		Config.Namespace = "get-links"
		got, err = GetString("region")
		assert.NoError(t, err)
		assert.Equal(t, "eu-central-1", got)

		Config.Namespace = "describe-global-networks"
		got, err = GetString("region")
		assert.NoError(t, err)
		assert.Equal(t, "us-west-2", got, "falls back to the unnamespaced key")

		got, err = GetString("profile", "default")
		assert.NoError(t, err)
		assert.Equal(t, "default", got)

		_, err = GetString("profile")
		assert.Error(t, err)

		_, err = GetString("cache.ttl")
		assert.ErrorContains(t, err, "not a string")
	})
}

func TestGetInt(t *testing.T) {
	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		got, err := GetInt("version")
		assert.NoError(t, err)
		assert.Equal(t, 1, got)

		got, err = GetInt("timeout")
		assert.NoError(t, err)
		assert.Equal(t, 30, got, "floats truncate")

		got, err = GetInt("missing", 60)
		assert.NoError(t, err)
		assert.Equal(t, 60, got)

		_, err = GetInt("missing", 10, 20)
		assert.Error(t, err, "more than one default is not a default")

		_, err = GetInt("name")
		assert.ErrorContains(t, err, "not an int")
	})
}

func TestGetDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nmctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  ttl: 90\n  long: 2h\n  bad: soon\n"), 0o600))
	t.Setenv(EnvFile, path)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	got, err := GetDuration("cache.ttl")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, got)

	got, err = GetDuration("cache.long")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, got)

	_, err = GetDuration("cache.bad")
	assert.ErrorContains(t, err, "not a duration")

	got, err = GetDuration("cache.missing", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, got)
}

func TestGetBool(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		got, err := GetBool("cache.enabled")
		assert.NoError(t, err)
		assert.True(t, got)

		got, err = GetBool("cache.missing", true)
		assert.NoError(t, err)
		assert.True(t, got)

		_, err = GetBool("region")
		assert.ErrorContains(t, err, "not a bool")
	})
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "sets.yaml", func(t *testing.T) {
		vals, err := GetStringSlice("get-links.defaults")
		assert.NoError(t, err)
		assert.Equal(t, []string{"--output json", "--sort -LinkId"}, vals)

		Config.Namespace = "get-links"
		vals, err = GetStringSlice("wide")
		assert.NoError(t, err)
		assert.Len(t, vals, 1)

		_, err = GetStringSlice("mixed_list")
		assert.Error(t, err)

		_, err = GetStringSlice("not_a_list")
		assert.Error(t, err)

		def := []string{"x", "y"}
		vals, err = GetStringSlice("does.not.exist", def)
		assert.NoError(t, err)
		assert.Equal(t, def, vals)
	})
}

func TestConfig_Get(t *testing.T) {
	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		_, err := Config.get("version.something")
		assert.ErrorContains(t, err, "no valid path found")

		val, err := Config.get("tags")
		assert.NoError(t, err)
		assert.Len(t, val, 2)
	})
}
