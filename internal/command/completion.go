// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/meta"
)

// BashCompletion writes a bash completion script for the subcommands of root.
func BashCompletion(w io.Writer, root *cli.Command) {
	var cmds []string
	for _, c := range root.Commands {
		cmds = append(cmds, c.Name)
	}
	rootOpts := flagWords(root.Flags)

	fmt.Fprintf(w, `# bash completion for %[1]s
_%[1]s()
{
    local cur prev cmd opts
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "%[2]s --help %[3]s" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    case "$cmd" in
`, root.Name, strings.Join(cmds, " "), strings.Join(rootOpts, " "))

	for _, c := range root.Commands {
		opts := flagWords(c.Flags)
		if c.Name == "completion" {
			opts = []string{"bash", "zsh"}
		}
		fmt.Fprintf(w, "    %s)\n        opts=\"%s\"\n        ;;\n", c.Name, strings.Join(opts, " "))
	}

	fmt.Fprintf(w, `    *)
        opts=""
        ;;
    esac
    opts="$opts %[2]s"

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "%[3]s" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _%[1]s %[1]s
`, root.Name, strings.Join(rootOpts, " "), strings.Join(outputFormats, " "))
}

// ZshCompletion writes a zsh completion script for the subcommands of root.
func ZshCompletion(w io.Writer, root *cli.Command) {
	fmt.Fprintf(w, "#compdef %[1]s\n\n_%[1]s() {\n  local -a cmds\n  cmds=(\n", root.Name)
	for _, c := range root.Commands {
		fmt.Fprintf(w, "    '%s:%s'\n", c.Name, zshQuote(c.Usage))
	}
	fmt.Fprintf(w, `  )

  if (( CURRENT == 2 )); then
    _describe -t commands '%s commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
`, root.Name)

	for _, c := range root.Commands {
		fmt.Fprintf(w, "    %s)\n", c.Name)
		if c.Name == "completion" {
			fmt.Fprint(w, "      _arguments '1: :((bash zsh))'\n      ;;\n")
			continue
		}
		fmt.Fprint(w, "      _arguments -C")
		for _, f := range append(append([]cli.Flag{}, c.Flags...), root.Flags...) {
			fmt.Fprintf(w, " \\\n        %s", zshFlagSpec(f))
		}
		fmt.Fprint(w, "\n      ;;\n")
	}

	fmt.Fprintf(w, `  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _%[1]s %[1]s
`, root.Name)
}

// flagWords lists every name of every flag in --long and -s form.
func flagWords(flags []cli.Flag) []string {
	var words []string
	for _, f := range flags {
		for _, n := range f.Names() {
			words = append(words, dashed(n))
		}
	}
	return words
}

func zshFlagSpec(f cli.Flag) string {
	names := f.Names()
	var usage, value string
	if d, ok := f.(cli.DocGenerationFlag); ok {
		usage = zshQuote(d.GetUsage())
		if d.TakesValue() {
			value = ":" + names[0]
		}
	}
	if value != "" && names[0] == "output" {
		value = ":format:(" + strings.Join(outputFormats, " ") + ")"
	}

	if len(names) == 1 {
		return fmt.Sprintf("'%s[%s]%s'", dashed(names[0]), usage, value)
	}

	dashedNames := make([]string, len(names))
	for i, n := range names {
		dashedNames[i] = dashed(n)
	}
	return fmt.Sprintf("'(%s)'{%s}'[%s]%s'",
		strings.Join(dashedNames, " "), strings.Join(dashedNames, ","), usage, value)
}

func dashed(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

func zshQuote(s string) string {
	return strings.NewReplacer("'", "", "[", "(", "]", ")", ":", " -").Replace(s)
}

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	w := stdout(cmd, m)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	} else {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	if err := FlagValidators(shell, ShellValidator); err != nil {
		fmt.Fprintln(stderr(cmd, m), "usage: nmctl completion [bash|zsh]")
		return err
	}

	switch shell {
	case "bash":
		BashCompletion(w, cmd.Root())
	case "zsh":
		ZshCompletion(w, cmd.Root())
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "nmctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
