// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the nmctl subcommands, one per AWS Network Manager
// API operation. Each operation is declared as an Operation table entry
// naming its flags, how they bind into the SDK input and which client method
// to call. Operation.Run then drives the shared template:
//
//   - bind the set flags into the input and warn about missing required ones
//   - ask for confirmation when the impact reaches the configured threshold
//   - call the service, following continuation tokens for list operations
//   - apply --select and render through the output package
//
// The package also wires the root flags and shell completion.
package command
