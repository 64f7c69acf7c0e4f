// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller resolves attribute paths within Network Manager response
// items, including lookups into AWS tag lists.
package driller
