// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders Network Manager responses as tables, json or yaml,
// applying --select, --attrs, --filter and --sort on the way.
package output
