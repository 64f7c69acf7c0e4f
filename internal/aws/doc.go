// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws loads AWS SDK v2 configuration and constructs the service
// clients nmctl talks to: Network Manager for every command and S3 for
// policy documents stored in buckets.
package aws
