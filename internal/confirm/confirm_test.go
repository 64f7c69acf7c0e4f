// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package confirm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImpact(t *testing.T) {
	tests := []struct {
		in      string
		want    Impact
		wantErr bool
	}{
		{"none", ImpactNone, false},
		{"Low", ImpactLow, false},
		{" medium ", ImpactMedium, false},
		{"HIGH", ImpactHigh, false},
		{"extreme", ImpactNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseImpact(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImpactString(t *testing.T) {
	assert.Equal(t, "medium", ImpactMedium.String())
	assert.Equal(t, "impact(9)", Impact(9).String())
}

func TestNeeded(t *testing.T) {
	tests := []struct {
		name      string
		impact    Impact
		threshold Impact
		force     bool
		always    bool
		want      bool
	}{
		{"read never prompts", ImpactNone, ImpactLow, false, false, false},
		{"below threshold", ImpactMedium, ImpactHigh, false, false, false},
		{"at threshold", ImpactHigh, ImpactHigh, false, false, true},
		{"above threshold", ImpactHigh, ImpactMedium, false, false, true},
		{"threshold none disables", ImpactHigh, ImpactNone, false, false, false},
		{"confirm forces prompt", ImpactMedium, ImpactHigh, false, true, true},
		{"force skips prompt", ImpactHigh, ImpactLow, true, false, false},
		{"force beats confirm", ImpactHigh, ImpactLow, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Needed(tt.impact, tt.threshold, tt.force, tt.always))
		})
	}
}

func TestAsk(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"yes", "y\n", true},
		{"yes long", "YES\n", true},
		{"no", "n\n", false},
		{"empty", "\n", false},
		{"eof", "", false},
		{"no newline", "y", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := &Confirmer{In: strings.NewReader(tt.answer), Out: &out, Interactive: true}
			got, err := c.Ask("DeleteSite", "site-0123")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), `Performing DeleteSite on target "site-0123".`)
		})
	}
}

func TestAsk_All(t *testing.T) {
	var out bytes.Buffer
	c := &Confirmer{In: strings.NewReader("a\n"), Out: &out, Interactive: true}

	ok, err := c.Ask("DeleteLink", "link-1")
	require.NoError(t, err)
	assert.True(t, ok)

	out.Reset()
	ok, err = c.Ask("DeleteLink", "link-2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, out.String())
}

func TestAsk_NotInteractive(t *testing.T) {
	c := &Confirmer{In: strings.NewReader("y\n"), Out: &bytes.Buffer{}}
	ok, err := c.Ask("DeleteDevice", "")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNotInteractive)
	assert.Contains(t, err.Error(), "--force")
}
