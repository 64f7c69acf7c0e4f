// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package nm defines the Network Manager client surface used by the commands,
// the factory that builds it, and error rewording for SDK failures.
package nm
