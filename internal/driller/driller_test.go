// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package driller

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type drillCase struct {
	Name        string         `yaml:"name"`
	JSON        map[string]any `yaml:"json"`
	Path        string         `yaml:"path"`
	ExpectedStr string         `yaml:"expectedStr"`
	IsNil       bool           `yaml:"isNil"`
	IsArray     bool           `yaml:"isArray"`
}

func TestDriller(t *testing.T) {
	raw, err := os.ReadFile("testdata/driller_cases.yaml")
	require.NoError(t, err)

	var cases []drillCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			doc, err := json.Marshal(tc.JSON)
			require.NoError(t, err)

			got := Driller(string(doc), tc.Path)
			switch {
			case tc.IsNil:
				assert.False(t, got.Exists() && got.Type.String() != "Null", "got %v", got.Value())
			case tc.IsArray:
				assert.True(t, got.IsArray(), "got %v", got.Value())
			default:
				require.True(t, got.Exists())
				assert.Equal(t, tc.ExpectedStr, got.String())
			}
		})
	}
}

func TestDriller_TagListKeptWhole(t *testing.T) {
	doc := `{"Device": {"Tags": [{"Key": "Name", "Value": "edge-a"}]}}`

	got := Driller(doc, "Device.Tags")
	require.True(t, got.IsArray())
	assert.Len(t, got.Array(), 1)

	assert.Equal(t, "edge-a", Driller(doc, "Device.Tags.Name").String())
	assert.False(t, Driller(doc, "Device.Tags.Missing").Exists())
}

func TestDriller_BadSegment(t *testing.T) {
	assert.False(t, Driller(`{"a": 1}`, "a b").Exists())
	assert.False(t, Driller(`{"a": [1]}`, "a[x]").Exists())
}
