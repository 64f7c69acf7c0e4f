// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/meta"
	"github.com/nmctl/nmctl/internal/nm"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// SettingsFrom collects the connection flags inherited from the root command.
func SettingsFrom(cmd *cli.Command) nm.Settings {
	return nm.Settings{
		Region:      cmd.String("region"),
		Profile:     cmd.String("profile"),
		EndpointURL: cmd.String("endpoint-url"),
		MaxAttempts: cmd.Int("max-attempts"),
	}
}

func stdout(cmd *cli.Command, m meta.Meta) io.Writer {
	if m.Out != nil {
		return m.Out
	}
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *cli.Command, m meta.Meta) io.Writer {
	if m.Err != nil {
		return m.Err
	}
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// optional returns a pointer to the flag's value, or nil when it was not set.
func optional(cmd *cli.Command, name string) *string {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.String(name)
	return &v
}
