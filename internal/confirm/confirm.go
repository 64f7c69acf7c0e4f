// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nmctl/nmctl/internal/log"
)

// Impact grades how destructive an operation is.
type Impact int

const (
	ImpactNone Impact = iota
	ImpactLow
	ImpactMedium
	ImpactHigh
)

// DefaultThreshold is used when the config has no confirm key.
const DefaultThreshold = ImpactHigh

var impactNames = map[Impact]string{
	ImpactNone:   "none",
	ImpactLow:    "low",
	ImpactMedium: "medium",
	ImpactHigh:   "high",
}

func (i Impact) String() string {
	if s, ok := impactNames[i]; ok {
		return s
	}
	return fmt.Sprintf("impact(%d)", int(i))
}

// ParseImpact accepts none, low, medium or high in any case.
func ParseImpact(s string) (Impact, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, name := range impactNames {
		if name == want {
			return i, nil
		}
	}
	return ImpactNone, fmt.Errorf("invalid confirm threshold %q (none, low, medium, high)", s)
}

// ErrNotInteractive is returned when a prompt is needed but nobody can answer it.
var ErrNotInteractive = errors.New("confirmation required but stdin is not interactive; pass --force to proceed")

// Confirmer prompts on Out and reads answers from In.
type Confirmer struct {
	In          io.Reader
	Out         io.Writer
	Interactive bool

	all    bool
	reader *bufio.Reader
}

// Needed reports whether an operation of the given impact must be confirmed.
// force always wins over always.
func Needed(impact, threshold Impact, force, always bool) bool {
	if force {
		return false
	}
	if always {
		return true
	}
	if impact == ImpactNone || threshold == ImpactNone {
		return false
	}
	return impact >= threshold
}

// Ask prompts for action on target. An "all" answer confirms every later
// prompt from this Confirmer without asking.
func (c *Confirmer) Ask(action, target string) (bool, error) {
	if c.all {
		return true, nil
	}
	if !c.Interactive {
		return false, ErrNotInteractive
	}
	if c.reader == nil {
		c.reader = bufio.NewReader(c.In)
	}

	if target != "" {
		fmt.Fprintf(c.Out, "Performing %s on target %q.\n", action, target)
	} else {
		fmt.Fprintf(c.Out, "Performing %s.\n", action)
	}
	fmt.Fprint(c.Out, "Are you sure? [y]es, [N]o, [a]ll: ")

	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	case "a", "all":
		c.all = true
		return true, nil
	default:
		log.Debugf("confirmation declined: action=%s, answer=%q", action, strings.TrimSpace(line))
		return false, nil
	}
}
