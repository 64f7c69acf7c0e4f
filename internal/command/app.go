// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/config"
	"github.com/nmctl/nmctl/internal/meta"
)

// commander builds one subcommand.
type commander interface {
	Command(m meta.Meta) *cli.Command
}

// commanders returns every subcommand builder in category order.
func commanders() []commander {
	var all []commander
	for _, group := range [][]commander{
		globalNetworkCommands(),
		siteCommands(),
		deviceCommands(),
		linkCommands(),
		connectionCommands(),
		transitGatewayCommands(),
		customerGatewayCommands(),
		coreNetworkCommands(),
		policyCommands(),
		attachmentCommands(),
		connectPeerCommands(),
		routeCommands(),
		tagCommands(),
	} {
		all = append(all, group...)
	}
	return all
}

// InitApp builds the root command. The meta supplies the arguments, streams
// and client factories; the config is loaded here.
func InitApp(ctx context.Context, m meta.Meta) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the nmctl
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(m.Args) > 1 && !strings.HasPrefix(m.Args[1], "-") {
		ns = m.Args[1]
	}

	config.Config.Namespace = ns
	if cfg, err := config.Load(); err == nil {
		m.Config = cfg
	} else {
		m.Config = config.Config
	}
	m.Context = ctx

	app := &cli.Command{
		Name:  "nmctl",
		Usage: "AWS Network Manager Control",
		Flags: NewRootFlags(ns, m.Config.Source),
		Metadata: map[string]any{
			"meta": m,
		},
	}
	if m.In != nil {
		app.Reader = m.In
	}
	if m.Out != nil {
		app.Writer = m.Out
	}
	if m.Err != nil {
		app.ErrWriter = m.Err
	}

	for _, c := range commanders() {
		app.Commands = append(app.Commands, c.Command(m))
	}
	app.Commands = append(app.Commands, completionCommandBuilder(m))

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
