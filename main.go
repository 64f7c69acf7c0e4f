// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/nmctl/nmctl/internal/cacheutil"
	"github.com/nmctl/nmctl/internal/command"
	"github.com/nmctl/nmctl/internal/config"
	"github.com/nmctl/nmctl/internal/confirm"
	"github.com/nmctl/nmctl/internal/log"
	"github.com/nmctl/nmctl/internal/meta"
	"github.com/nmctl/nmctl/internal/nm"
	"github.com/nmctl/nmctl/internal/version"
)

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.String())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		return args
	}

	args, injected := processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	return deduplicateFlags(args, injected)
}

// span is the half-open range [lo, hi) of args injected from an @set.
type span struct {
	lo, hi int
}

func (s span) contains(i int) bool {
	return i >= s.lo && i < s.hi
}

// processSetOnly expands an @set argument into the flags stored under
// <command>.<set> in the config file and reports where they were inserted.
// Without an explicit @set nothing is injected, since per-command flag
// defaults are already read from config.
func processSetOnly(args []string) ([]string, span) {
	if len(args) < 3 {
		return args, span{}
	}

	for i, a := range args[2:] {
		if !strings.HasPrefix(a, "@") || len(a) == 1 {
			continue
		}
		idx := 2 + i
		set := a[1:]
		args = append(args[:idx:idx], args[idx+1:]...)
		entries, err := config.GetStringSlice(args[1] + "." + set)
		if err != nil {
			log.Warnf("set %s not found for %s: %v", set, args[1], err)
			return args, span{}
		}
		out := injectConfigSet(args, entries, idx)
		return out, span{lo: idx, hi: idx + len(out) - len(args)}
	}
	return args, span{}
}

// injectConfigSet splits each entry on whitespace and inserts the fields at
// insertIdx.
func injectConfigSet(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:insertIdx]...)
	out = append(out, expanded...)
	return append(out, args[insertIdx:]...)
}

// deduplicateFlags drops flags injected from an @set when the same flag is
// also given explicitly, so explicit flags override the set. Repeats outside
// the set, such as several --tag flags, are kept.
func deduplicateFlags(args []string, injected span) []string {
	if len(args) <= 2 || injected.lo == injected.hi {
		return args
	}

	type token struct {
		name  string
		start int
		parts []string
	}

	var tokens []token
	for i := 2; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			tokens = append(tokens, token{start: i, parts: args[i:]})
			break
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			tokens = append(tokens, token{start: i, parts: []string{a}})
			continue
		}

		name := strings.TrimLeft(a, "-")
		if eq := strings.Index(name, "="); eq >= 0 {
			tokens = append(tokens, token{name: name[:eq], start: i, parts: []string{a}})
			continue
		}

		// nmctl takes no positional args, so a following non-flag arg is
		// this flag's value.
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			tokens = append(tokens, token{name: name, start: i, parts: []string{a, args[i+1]}})
			i++
			continue
		}
		tokens = append(tokens, token{name: name, start: i, parts: []string{a}})
	}

	explicit := map[string]bool{}
	for _, tk := range tokens {
		if tk.name != "" && !injected.contains(tk.start) {
			explicit[tk.name] = true
		}
	}

	out := append([]string{}, args[:2]...)
	for _, tk := range tokens {
		if injected.contains(tk.start) && explicit[tk.name] {
			continue
		}
		out = append(out, tk.parts...)
	}
	return out
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(ctx context.Context, args []string) int {
	if hours, _ := config.GetInt("cache.clean", 0); hours > 0 {
		if err := cacheutil.Purge(hours); err != nil {
			log.WithError(err).Warnf("cache purge failed")
		}
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	m := meta.Meta{
		Args:            args,
		In:              os.Stdin,
		Out:             os.Stdout,
		Err:             os.Stderr,
		Interactive:     interactive,
		Confirmer:       &confirm.Confirmer{In: os.Stdin, Out: os.Stderr, Interactive: interactive},
		NewClient:       nm.NewClient,
		NewObjectGetter: nm.NewObjectGetter,
	}

	app, err := command.InitApp(ctx, m)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return initAndRunApp(ctx, args)
}
