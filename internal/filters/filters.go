// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/nmctl/nmctl/internal/attrs"
	"github.com/nmctl/nmctl/internal/driller"
)

// DelimEnv overrides the filter delimiter for values that contain commas.
const DelimEnv = "NMCTL_FILTER_DELIM"

// filterRegex splits a filter into an optional server-side marker, the key,
// an optionally negated operator and the target. Examples: "State=AVAILABLE",
// "Description!@lab", "_State=PENDING_ATTACHMENT_ACCEPTANCE".
var filterRegex = regexp.MustCompile(`^(_)?([^!?=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Filter is a single parsed --filter expression.
type Filter struct {
	Key        string `yaml:"key" json:"Key"`
	Negate     bool   `yaml:"negate" json:"Negate"`
	Operand    string `yaml:"operand" json:"Operand"`
	ServerSide bool   `yaml:"serverSide" json:"ServerSide"`
	Value      string `yaml:"value" json:"Value"`
}

// BuildFilters parses a filter specification. Malformed entries are logged
// and skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	delim := ","
	if d, ok := os.LookupEnv(DelimEnv); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		key := strings.TrimSpace(parts[2])
		if key == "" {
			log.Error("invalid filter: empty key in " + filterSpec)
			continue
		}

		operand := parts[3]
		negate := strings.HasPrefix(operand, "!")
		operand = strings.TrimPrefix(operand, "!")

		filters = append(filters, Filter{
			Key:        key,
			ServerSide: parts[1] == "_",
			Negate:     negate,
			Operand:    operand,
			Value:      parts[4],
		})
	}

	return filters
}

// ServerSide returns the server-side (_key) filters of spec as key/value
// pairs for binding into a request. Only = is meaningful to the service.
func ServerSide(spec string) (map[string]string, error) {
	result := map[string]string{}
	for _, f := range BuildFilters(spec) {
		if !f.ServerSide {
			continue
		}
		if f.Operand != "=" || f.Negate {
			return nil, fmt.Errorf("server-side filter _%s only supports =", f.Key)
		}
		result[f.Key] = f.Value
	}
	return result, nil
}

// FilterDataset returns the items of candidates that pass every client-side
// filter, each projected onto attrs. Unknown filter keys are warned about on
// warn and otherwise ignored.
func FilterDataset(candidates gjson.Result, attrs attrs.AttrList, spec string, warn io.Writer) []map[string]interface{} {
	//nolint:prealloc
	var filteredResults []map[string]interface{}

	// Transforms are applied by the caller.
	for _, candidate := range Select(candidates, attrs, spec, warn) {
		filteredResults = append(filteredResults, Project(candidate, attrs))
	}

	return filteredResults
}

// Select returns the items of candidates that pass every client-side filter,
// unprojected.
func Select(candidates gjson.Result, attrs attrs.AttrList, spec string, warn io.Writer) []gjson.Result {
	//nolint:prealloc
	var selected []gjson.Result

	filters := BuildFilters(spec)
	for _, filter := range filters {
		if !filter.ServerSide && keyFor(attrs, filter.Key) == "" {
			msg := fmt.Sprintf("filter key not found: %s", filter.Key)
			log.Warn(msg)
			if warn != nil {
				fmt.Fprintf(warn, "warning: %s\n", msg)
			}
		}
	}

	for _, candidate := range candidates.Array() {
		if applyFilters(candidate, attrs, filters) {
			selected = append(selected, candidate)
		}
	}

	return selected
}

// Project maps an item onto attrs, keyed by output key.
func Project(item gjson.Result, attrs attrs.AttrList) map[string]interface{} {
	result := make(map[string]interface{}, len(attrs))
	for _, attr := range attrs {
		result[attr.OutputKey] = driller.Driller(item.Raw, attr.Key).Value()
	}
	return result
}

// keyFor maps a filter key, given as an output key or a path, to its attr
// path.
func keyFor(attrs attrs.AttrList, key string) string {
	for _, attr := range attrs {
		if attr.OutputKey == key || attr.Key == key {
			return attr.Key
		}
	}
	return ""
}

// applyFilters reports whether candidate passes every client-side filter.
func applyFilters(candidate gjson.Result, attrs attrs.AttrList, filters []Filter) bool {
	for _, filter := range filters {
		if filter.ServerSide {
			continue
		}

		key := keyFor(attrs, filter.Key)
		if key == "" {
			continue
		}

		value := driller.Driller(candidate.Raw, key).Value()
		if value == nil {
			return false
		}

		result := true
		if ts, ok := asTime(value); ok && (filter.Operand == "<" || filter.Operand == ">") {
			result = checkTimeOperand(ts, filter)
		} else if v, ok := value.(string); ok {
			result = checkStringOperand(v, filter)
		} else if v, ok := value.(bool); ok {
			result = checkStringOperand(strconv.FormatBool(v), filter)
		} else if num, ok := toFloat64(value); ok {
			result = checkNumericOperand(num, filter)
		} else if filter.Operand == "@" {
			result = checkContainsOperand(value, filter)
		}

		if !result {
			return false
		}
	}

	return true
}

// checkContainsOperand evaluates @ against list and map values.
func checkContainsOperand(value interface{}, filter Filter) bool {
	switch val := value.(type) {
	case []any:
		for _, item := range val {
			if fmt.Sprint(item) == filter.Value {
				return !filter.Negate
			}
		}
		return filter.Negate
	case map[string]any:
		_, found := val[filter.Value]
		return found != filter.Negate
	default:
		log.Error(fmt.Sprintf("unsupported type for contains filtering: %T", value))
		return false
	}
}

// checkNumericOperand compares numerically. Supports =, > and <.
func checkNumericOperand(value float64, filter Filter) bool {
	tgt, err := strconv.ParseFloat(strings.TrimSpace(filter.Value), 64)
	if err != nil {
		log.Error("invalid numeric value: " + filter.Value)
		return false
	}

	switch filter.Operand {
	case "=":
		return (value == tgt) == !filter.Negate
	case ">":
		return (value > tgt) == !filter.Negate
	case "<":
		return (value < tgt) == !filter.Negate
	default:
		log.Error("unsupported numeric operand: " + filter.Operand)
		return false
	}
}

// timeLayouts are accepted for the target of a time comparison, e.g.
// CreatedAt>2025-01-31 or CreatedAt<2025-01-31T12:00:00Z.
var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// asTime reports whether value is an RFC3339 timestamp as the SDK renders
// them.
func asTime(value interface{}) (time.Time, bool) {
	s, ok := value.(string)
	if !ok {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, s)
	return ts, err == nil
}

// checkTimeOperand compares timestamps chronologically. Targets without a
// zone are UTC.
func checkTimeOperand(value time.Time, filter Filter) bool {
	for _, layout := range timeLayouts {
		tgt, err := time.Parse(layout, strings.TrimSpace(filter.Value))
		if err != nil {
			continue
		}
		if filter.Operand == ">" {
			return value.After(tgt) == !filter.Negate
		}
		return value.Before(tgt) == !filter.Negate
	}
	// Not a time, so compare as text.
	return checkStringOperand(value.Format(time.RFC3339), filter)
}

// checkStringOperand compares strings. ~ is case insensitive equality, @ is
// substring and / is a regular expression.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Value == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Value) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Value) == !filter.Negate
	case ">":
		return value > filter.Value == !filter.Negate
	case "<":
		return value < filter.Value == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Value) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Value, value)
		if err != nil {
			log.Error("invalid regex: " + filter.Value)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Error("unsupported filtering operand: " + filter.Operand)
		return false
	}
}

// toFloat64 normalizes numeric types.
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
