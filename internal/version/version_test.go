// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldV, oldR := Version, Revision
	t.Cleanup(func() { Version, Revision = oldV, oldR })

	Version, Revision = "v1.2.3", ""
	assert.Equal(t, "v1.2.3", String())

	Revision = "abc1234"
	assert.Equal(t, "v1.2.3 (abc1234)", String())
}
