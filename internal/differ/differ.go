// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Options shape a diff.
type Options struct {
	// Top level keys left out of the comparison.
	Ignore []string
	// ANSI coloring of added and removed lines.
	Color bool
}

// Diff writes the difference between two JSON documents to w and reports
// whether they differ.
func Diff(w io.Writer, from, to []byte, opts Options) (bool, error) {
	if len(from) == 0 || len(to) == 0 {
		return false, fmt.Errorf("nothing to compare (%d and %d bytes)", len(from), len(to))
	}
	log.Debugf("diffing: from=%d bytes, to=%d bytes", len(from), len(to))

	var left, right map[string]interface{}
	if err := json.Unmarshal(from, &left); err != nil {
		return false, fmt.Errorf("failed to parse first document: %w", err)
	}
	if err := json.Unmarshal(to, &right); err != nil {
		return false, fmt.Errorf("failed to parse second document: %w", err)
	}

	for _, key := range opts.Ignore {
		delete(left, key)
		delete(right, key)
	}

	delta := gojsondiff.New().CompareObjects(left, right)
	if !delta.Modified() {
		fmt.Fprintln(w, "The policy versions are identical.")
		return false, nil
	}

	f := formatter.NewAsciiFormatter(left, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       opts.Color,
	})
	diffString, err := f.Format(delta)
	if err != nil {
		return true, fmt.Errorf("failed to format diff: %w", err)
	}

	fmt.Fprint(w, diffString)
	return true, nil
}
