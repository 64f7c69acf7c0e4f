// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docsgen renders per-command markdown and man pages from the live nmctl
// command tree, plus a commands.yaml index.
package main

import (
	"context"
	"embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/nmctl/nmctl/internal/command"
	"github.com/nmctl/nmctl/internal/confirm"
	"github.com/nmctl/nmctl/internal/meta"
)

//go:embed templates/*.tmpl
var templates embed.FS

type Index struct {
	Subcommands []Subcommand `yaml:"subcommands"`
	Common      Common       `yaml:"common"`
}

type Common struct {
	Flags []Flag `yaml:"flags"`
}

type Subcommand struct {
	ID          string `yaml:"id"`
	Short       string `yaml:"short"`
	Category    string `yaml:"category,omitempty"`
	Usage       string `yaml:"usage"`
	Flags       []Flag `yaml:"flags"`
	Destructive bool   `yaml:"destructive,omitempty"`
}

type Flag struct {
	ID          string `yaml:"id"`
	Syntax      string `yaml:"syntax"`
	Description string `yaml:"description"`
}

type TemplateData struct {
	Subcommand
	Common  []Flag
	Date    string
	Version string
	IDUpper string
}

type Outputs struct {
	Template string
	Folder   string
	Prefix   string
	Suffix   string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs-dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	app, err := command.InitApp(context.Background(), meta.Meta{Args: []string{"nmctl"}})
	if err != nil {
		panic(err)
	}

	index := Index{Common: Common{Flags: flags(app.Flags)}}
	for _, c := range app.Commands {
		impact, _ := c.Metadata["impact"].(confirm.Impact)
		index.Subcommands = append(index.Subcommands, Subcommand{
			ID:          c.Name,
			Short:       c.Usage,
			Category:    c.Category,
			Usage:       "nmctl " + c.Name + " [flags]",
			Flags:       flags(c.Flags),
			Destructive: impact == confirm.ImpactHigh,
		})
	}
	sort.Slice(index.Subcommands, func(i, j int) bool {
		return index.Subcommands[i].ID < index.Subcommands[j].ID
	})

	types := []Outputs{
		{Template: "templates/nmctl.md.tmpl", Folder: filepath.Join(docs, "commands"), Suffix: ".md"},
		{Template: "templates/nmctl.man.tmpl", Folder: filepath.Join(docs, "man", "share", "man1"), Prefix: "nmctl-", Suffix: ".1"},
	}

	for _, sub := range index.Subcommands {
		metadata := TemplateData{
			Subcommand: sub,
			Common:     index.Common.Flags,
			Date:       time.Now().Format("January 2, 2006"),
			Version:    getVersion(),
			IDUpper:    strings.ToUpper(sub.ID),
		}

		for _, t := range types {
			if err := render(t, metadata); err != nil {
				panic(err)
			}
		}
	}

	out, err := yaml.Marshal(index)
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(filepath.Join(docs, "commands.yaml"), out, 0o644); err != nil {
		panic(err)
	}
}

func render(t Outputs, data TemplateData) error {
	if err := os.MkdirAll(t.Folder, 0o755); err != nil {
		return err
	}

	tmpl, err := template.ParseFS(templates, t.Template)
	if err != nil {
		return err
	}

	path := filepath.Join(t.Folder, t.Prefix+data.ID+t.Suffix)
	fmt.Println("Generating", path)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return tmpl.Execute(file, data)
}

// flags flattens cli flags into sorted doc entries.
func flags(in []cli.Flag) []Flag {
	var out []Flag
	for _, f := range in {
		names := f.Names()
		var syntax []string
		for _, n := range names {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}
		flag := Flag{ID: names[0], Syntax: strings.Join(syntax, ", ")}
		if d, ok := f.(cli.DocGenerationFlag); ok {
			flag.Description = d.GetUsage()
			if d.TakesValue() {
				flag.Syntax += " <value>"
			}
		}
		out = append(out, flag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
