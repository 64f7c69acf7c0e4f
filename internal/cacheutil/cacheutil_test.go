// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cacheutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withCacheDir points the cache at a fresh temp dir.
func withCacheDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(DirEnv, dir)
	t.Setenv(EnabledEnv, "")
	return dir
}

func TestDir(t *testing.T) {
	t.Setenv(DirEnv, "/tmp/nmctl-cache")
	dir, ok := Dir()
	assert.True(t, ok)
	assert.Equal(t, "/tmp/nmctl-cache", dir)

	t.Setenv(DirEnv, "")
	dir, ok = Dir()
	if ok {
		assert.Equal(t, "nmctl", filepath.Base(dir))
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
	}
	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			t.Setenv(EnabledEnv, tt.value)
			assert.Equal(t, tt.want, Enabled())
		})
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "GetLinks|us-west-2|{}", Key("GetLinks", "us-west-2", "", "{}"))
	assert.Equal(t, "", Key())
}

func TestWriteRead(t *testing.T) {
	base := withCacheDir(t)
	sub := []string{"us-west-2", "default"}

	_, ok := Read(sub, "GetLinks|{}", time.Minute)
	assert.False(t, ok)

	require.NoError(t, Write(sub, "GetLinks|{}", []byte("  {\"Links\":[]}\n")))

	p, exists := EntryPath(sub, "GetLinks|{}")
	assert.True(t, exists)
	assert.Equal(t, filepath.Join(base, "us-west-2", "default", encodeKey("GetLinks|{}")), p)

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entry, ok := Read(sub, "GetLinks|{}", time.Minute)
	require.True(t, ok)
	assert.Equal(t, `{"Links":[]}`, string(entry.Data))
	assert.Equal(t, "GetLinks|{}", entry.Key)
	assert.Less(t, entry.Age(), time.Minute)
}

func TestRead_Stale(t *testing.T) {
	withCacheDir(t)
	require.NoError(t, Write(nil, "k", []byte("v")))

	p, _ := EntryPath(nil, "k")
	old := time.Now().Add(-10 * time.Minute)
	require.NoError(t, os.Chtimes(p, old, old))

	_, ok := Read(nil, "k", 5*time.Minute)
	assert.False(t, ok)

	entry, ok := Read(nil, "k", 0)
	require.True(t, ok)
	assert.Equal(t, "v", string(entry.Data))
}

func TestDisabled(t *testing.T) {
	withCacheDir(t)
	t.Setenv(EnabledEnv, "false")

	require.NoError(t, Write(nil, "k", []byte("v")))
	_, exists := EntryPath(nil, "k")
	assert.False(t, exists)

	_, ok := Read(nil, "k", 0)
	assert.False(t, ok)
}

func TestPurge(t *testing.T) {
	withCacheDir(t)
	require.NoError(t, Write([]string{"a"}, "old", []byte("1")))
	require.NoError(t, Write([]string{"a", "b"}, "nested-old", []byte("2")))
	require.NoError(t, Write([]string{"a"}, "new", []byte("3")))

	old := time.Now().Add(-48 * time.Hour)
	for _, k := range []struct {
		sub []string
		key string
	}{{[]string{"a"}, "old"}, {[]string{"a", "b"}, "nested-old"}} {
		p, _ := EntryPath(k.sub, k.key)
		require.NoError(t, os.Chtimes(p, old, old))
	}

	require.NoError(t, Purge(0))
	_, exists := EntryPath([]string{"a"}, "old")
	assert.True(t, exists)

	require.NoError(t, Purge(24))
	_, exists = EntryPath([]string{"a"}, "old")
	assert.False(t, exists)
	_, exists = EntryPath([]string{"a", "b"}, "nested-old")
	assert.False(t, exists)
	_, exists = EntryPath([]string{"a"}, "new")
	assert.True(t, exists)
}

func TestPurge_MissingDir(t *testing.T) {
	t.Setenv(DirEnv, filepath.Join(t.TempDir(), "never-created"))
	assert.NoError(t, Purge(1))
}

func TestEncodeKey(t *testing.T) {
	a := encodeKey("GetLinks|us-west-2")
	assert.Len(t, a, 64)
	assert.Equal(t, a, encodeKey("GetLinks|us-west-2"))
	assert.NotEqual(t, a, encodeKey("GetLinks|eu-central-1"))
}
