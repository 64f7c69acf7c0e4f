// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/nmctl/nmctl/internal/attrs"
	"github.com/nmctl/nmctl/internal/config"
	"github.com/nmctl/nmctl/internal/filters"
)

// rowIndexKey carries an item's position through sorting so the unprojected
// items can be emitted in sorted order.
const rowIndexKey = "\x00index"

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		// Network Manager numbers are ids, counts, ASNs and speeds.
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// SliceDiceSpit selects, filters, transforms, sorts and renders a response
// document according to command flags and attrs.
//
// parent is a gjson path to the value to render, "" or "*" for the whole
// document. Arrays render as a table in text mode, objects as a key/value
// table and scalars as their string form. In json and yaml mode the selected
// value is emitted in full unless --attrs was given. postProcess sees the
// rows of a table before they are rendered.
func SliceDiceSpit(raw bytes.Buffer,
	al attrs.AttrList,
	cmd *cli.Command,
	parent string,
	w io.Writer,
	postProcess func([]map[string]interface{}) error) error {

	if w == nil {
		w = os.Stdout
	}

	output := cmd.String("output")
	if output == "raw" {
		_, err := w.Write(raw.Bytes())
		return err
	}

	doc := gjson.Parse(raw.String())
	selected := doc
	if parent != "" && parent != "*" {
		selected = doc.Get(parent)
	}
	log.Debugf("selected: parent=%s, type=%s", parent, selected.Type)

	if !selected.Exists() || selected.Type == gjson.Null {
		if output == "json" {
			_, err := fmt.Fprintln(w, "null")
			return err
		}
		return nil
	}

	explicit := cmd.String("attrs") != ""

	switch {
	case selected.IsArray():
		return spitList(selected, al, explicit, cmd, w, postProcess)
	case selected.IsObject():
		return spitObject(selected, al, explicit, cmd, w)
	default:
		return spitScalar(selected, output, w)
	}
}

func spitList(items gjson.Result,
	al attrs.AttrList,
	explicit bool,
	cmd *cli.Command,
	w io.Writer,
	postProcess func([]map[string]interface{}) error) error {

	output := cmd.String("output")

	arr := items.Array()
	if len(arr) > 0 && !arr[0].IsObject() {
		return spitScalarList(items, output, w)
	}

	al = append(attrs.AttrList(nil), al...)
	if len(al.Included()) == 0 {
		al = append(DeriveAttrs(items), al...)
	}

	selected := filters.Select(items, al, cmd.String("filter"), cmd.Root().ErrWriter)

	rows := make([]map[string]interface{}, 0, len(selected))
	for i, item := range selected {
		row := filters.Project(item, al)
		row[rowIndexKey] = i
		rows = append(rows, row)
	}

	if cmd.Bool("local") {
		for i := range al {
			al[i].TransformSpec += "t"
		}
	}
	for _, row := range rows {
		for _, attr := range al {
			if attr.TransformSpec != "" {
				row[attr.OutputKey] = attr.Transform(row[attr.OutputKey])
			}
		}
	}

	SortDataset(rows, cmd.String("sort"))

	switch output {
	case "json", "yaml":
		var doc interface{}
		if explicit {
			doc = orderedRows(rows, al)
		} else {
			full := make([]interface{}, 0, len(rows))
			for _, row := range rows {
				full = append(full, Ordered(selected[row[rowIndexKey].(int)]))
			}
			doc = full
		}
		return encode(doc, output, w)
	default:
		if postProcess != nil {
			if err := postProcess(rows); err != nil {
				return fmt.Errorf("post process: %w", err)
			}
		}
		TableWriter(rows, al, cmd, w)
		return nil
	}
}

func spitObject(item gjson.Result, al attrs.AttrList, explicit bool, cmd *cli.Command, w io.Writer) error {
	output := cmd.String("output")

	var pairs yaml.MapSlice
	if explicit {
		row := filters.Project(item, al)
		for _, attr := range al.Included() {
			value := row[attr.OutputKey]
			if attr.TransformSpec != "" {
				value = attr.Transform(value)
			}
			pairs = append(pairs, yaml.MapItem{Key: attr.OutputKey, Value: value})
		}
	}

	switch output {
	case "json", "yaml":
		if explicit {
			return encode(pairs, output, w)
		}
		return encode(Ordered(item), output, w)
	default:
		if !explicit {
			item.ForEach(func(key, value gjson.Result) bool {
				pairs = append(pairs, yaml.MapItem{Key: key.String(), Value: value.Value()})
				return true
			})
		}

		rows := make([]map[string]interface{}, 0, len(pairs))
		for _, pair := range pairs {
			rows = append(rows, map[string]interface{}{"Key": pair.Key, "Value": pair.Value})
		}
		kv := attrs.AttrList{
			{Key: "Key", OutputKey: "Key", Include: true},
			{Key: "Value", OutputKey: "Value", Include: true},
		}
		TableWriter(rows, kv, cmd, w)
		return nil
	}
}

func spitScalar(value gjson.Result, output string, w io.Writer) error {
	switch output {
	case "json":
		_, err := fmt.Fprintln(w, value.Raw)
		return err
	case "yaml":
		return encode(value.Value(), output, w)
	default:
		_, err := fmt.Fprintln(w, value.String())
		return err
	}
}

func spitScalarList(items gjson.Result, output string, w io.Writer) error {
	if output == "json" || output == "yaml" {
		return encode(Ordered(items), output, w)
	}
	for _, item := range items.Array() {
		if _, err := fmt.Fprintln(w, item.String()); err != nil {
			return err
		}
	}
	return nil
}

// encode writes doc as indented JSON or YAML.
func encode(doc interface{}, output string, w io.Writer) error {
	if output == "yaml" {
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = w.Write(out)
		return err
	}

	out, err := json.MarshalIndent(orderedJSON(doc), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// Ordered converts a gjson value into plain values, keeping object keys in
// document order as yaml.MapSlice.
func Ordered(r gjson.Result) interface{} {
	switch {
	case r.IsObject():
		var m yaml.MapSlice
		r.ForEach(func(key, value gjson.Result) bool {
			m = append(m, yaml.MapItem{Key: key.String(), Value: Ordered(value)})
			return true
		})
		return m
	case r.IsArray():
		result := make([]interface{}, 0)
		for _, e := range r.Array() {
			result = append(result, Ordered(e))
		}
		return result
	default:
		return r.Value()
	}
}

func orderedRows(rows []map[string]interface{}, al attrs.AttrList) []interface{} {
	result := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		var m yaml.MapSlice
		for _, attr := range al.Included() {
			m = append(m, yaml.MapItem{Key: attr.OutputKey, Value: row[attr.OutputKey]})
		}
		result = append(result, m)
	}
	return result
}

// orderedJSON makes MapSlice values marshal as JSON objects in order.
func orderedJSON(v interface{}) interface{} {
	switch v := v.(type) {
	case yaml.MapSlice:
		return jsonObject(v)
	case []interface{}:
		result := make([]interface{}, 0, len(v))
		for _, e := range v {
			result = append(result, orderedJSON(e))
		}
		return result
	default:
		return v
	}
}

type jsonObject yaml.MapSlice

func (o jsonObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fmt.Sprint(item.Key))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(orderedJSON(item.Value))
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DeriveAttrs returns an attr for every scalar key of the first item, in
// document order. Nested objects and lists are left to --attrs.
func DeriveAttrs(items gjson.Result) attrs.AttrList {
	var al attrs.AttrList
	arr := items.Array()
	if len(arr) == 0 {
		return al
	}

	arr[0].ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() && !value.IsArray() {
			al = append(al, attrs.Attr{Key: key.String(), OutputKey: key.String(), Include: true})
		}
		return true
	})
	return al
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options. If w is nil, os.Stdout is used.
func TableWriter(
	resultSet []map[string]interface{},
	al attrs.AttrList,
	cmd *cli.Command,
	w io.Writer) {

	if w == nil {
		w = os.Stdout
	}

	if len(resultSet) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if cmd.Bool("color") {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(result))
		for _, attr := range al {
			if !attr.Include {
				continue
			}
			row = append(row, InterfaceToString(result[attr.OutputKey], "-"))
		}
		rows = append(rows, row)
	}

	pad := 0
	if cmd.Bool("padding") {
		pad = 1
	}
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if cmd.Bool("titles") {
		var headers []string
		for _, attr := range al {
			if attr.Include {
				headers = append(headers, attr.OutputKey)
			}
		}

		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)

	if footer, ok := cmd.Metadata["footer"].(string); ok {
		if cmd.Bool("color") {
			footer = headerStyle.Render(footer)
		}
		fmt.Fprintln(w, footer)
	}
}

// getColors returns configured color values for table rendering. Explicit
// colors from the config win; otherwise a default suited to the terminal
// background is used.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
