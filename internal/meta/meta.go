// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"

	"github.com/nmctl/nmctl/internal/config"
	"github.com/nmctl/nmctl/internal/confirm"
	"github.com/nmctl/nmctl/internal/nm"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, the standard streams and the factories used
// to build AWS clients. Tests replace the streams and the factories.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context

	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Interactive reports whether In is a terminal a human can answer
	// confirmation prompts on.
	Interactive bool

	// Confirmer, when set, is shared by every command run with this Meta so
	// an "all" answer carries over to later prompts.
	Confirmer *confirm.Confirmer

	NewClient       nm.ClientFactory
	NewObjectGetter nm.ObjectGetterFactory
}
