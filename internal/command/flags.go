// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

func schemaFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "schema",
		Usage:       "list the attributes of the default selection",
		HideDefault: true,
	}
}

func cacheFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "cache",
		Usage:       "serve the response from the local cache when fresh",
		HideDefault: true,
	}
}

func forceFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "force",
		Usage:       "never prompt for confirmation",
		HideDefault: true,
	}
}

func confirmFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "confirm",
		Usage:       "prompt for confirmation regardless of the threshold",
		HideDefault: true,
	}
}

// NewGlobalFlags returns the output flags every operation carries. With a
// command name and config file path, the string flags also read their defaults
// from the config file.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	strFlags := []*cli.StringFlag{
		{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, yaml, raw)",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
		},
	}

	for _, f := range strFlags {
		if len(params) == 2 && params[1] != "" {
			f = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], f)
		}
		flags = append(flags, f)
	}

	flags = append(flags,
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "local",
			Aliases: []string{"l"},
			Usage:   "show local timestamps",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:  "padding",
			Usage: "pad text output columns",
			Value: true,
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	)

	return
}

// NewRootFlags returns the connection flags of the root command. Subcommands
// inherit them.
func NewRootFlags(params ...string) (flags []cli.Flag) {
	strFlags := []*cli.StringFlag{
		{
			Name:    "region",
			Usage:   "AWS region to send requests to",
			Sources: cli.EnvVars("AWS_REGION", "AWS_DEFAULT_REGION"),
		},
		{
			Name:    "profile",
			Usage:   "shared config profile to load credentials from",
			Sources: cli.EnvVars("AWS_PROFILE"),
		},
		{
			Name:    "endpoint-url",
			Usage:   "override the service endpoint",
			Sources: cli.EnvVars("NMCTL_ENDPOINT_URL"),
		},
	}

	for _, f := range strFlags {
		if len(params) == 2 && params[1] != "" {
			f = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], f)
		}
		flags = append(flags, f)
	}

	flags = append(flags,
		&cli.IntFlag{
			Name:  "max-attempts",
			Usage: "maximum attempts per request, including the first",
			Value: 0,
		},
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "nmctl version info",
			HideDefault: true,
		},
	)

	return
}

// NewPagingFlags returns the flags of list operations.
func NewPagingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int32Flag{
			Name:  "max-results",
			Usage: "page size requested from the service",
			Validator: func(value int32) error {
				return FlagValidators(value, PageSizeValidator)
			},
		},
		&cli.StringFlag{
			Name:  "next-token",
			Usage: "continue from this token and fetch a single page",
		},
		&cli.BoolFlag{
			Name:        "no-paginate",
			Usage:       "fetch a single page and report the next token",
			HideDefault: true,
		},
	}
}

func selectFlag(def string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "select",
		Usage: "response path to emit: *, ^flag-name, or a path",
		Value: def,
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if ns != "" {
		src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// Flag constructors used by the operation tables. Usage strings follow the
// service's parameter documentation.

func stringFlag(name, usage string) *cli.StringFlag {
	return &cli.StringFlag{Name: name, Usage: usage}
}

func stringsFlag(name, usage string) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{Name: name, Usage: usage + " (repeatable or comma-separated)"}
}

func int32Flag(name, usage string) *cli.Int32Flag {
	return &cli.Int32Flag{Name: name, Usage: usage}
}

func int64Flag(name, usage string) *cli.Int64Flag {
	return &cli.Int64Flag{Name: name, Usage: usage}
}

func float64Flag(name, usage string) *cli.Float64Flag {
	return &cli.Float64Flag{Name: name, Usage: usage}
}

// enumFlag documents the allowed values. The service validates them.
func enumFlag[T ~string](name, usage string, values []T) *cli.StringFlag {
	allowed := make([]string, len(values))
	for i, v := range values {
		allowed[i] = string(v)
	}
	return &cli.StringFlag{
		Name:  name,
		Usage: fmt.Sprintf("%s (%s)", usage, strings.Join(allowed, ", ")),
	}
}

func enumsFlag[T ~string](name, usage string, values []T) *cli.StringSliceFlag {
	allowed := make([]string, len(values))
	for i, v := range values {
		allowed[i] = string(v)
	}
	return &cli.StringSliceFlag{
		Name:  name,
		Usage: fmt.Sprintf("%s (%s)", usage, strings.Join(allowed, ", ")),
	}
}

func tagsFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:  "tag",
		Usage: "tag as key=value, repeatable",
		Validator: func(value []string) error {
			return FlagValidators(value, TagValidator)
		},
	}
}

func clientTokenFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "client-token",
		Usage: "idempotency token, generated when absent",
	}
}

func documentFlag(name, usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  name,
		Usage: usage + ": JSON, file://path or s3://bucket/key",
	}
}
