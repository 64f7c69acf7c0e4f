// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package attrs parses --attrs specifications into the list of response
// fields a command renders, filters and sorts on.
package attrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/nmctl/nmctl/internal/log"
)

var lengthRe = regexp.MustCompile(`-?\d+`)

// Attr is one field of a response item. Keys are gjson style paths rooted at
// the item, e.g. LinkId or Bandwidth.DownloadSpeed.
type Attr struct {
	// Path of the value within each item.
	Key string `yaml:"key" json:"Key"`
	// Include is false for attrs that only exist to be filtered or sorted on.
	Include bool `yaml:"include" json:"Include"`
	// Column title for text output and key for json/yaml output.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
	// Transformation spec applied to the output value.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

// Transform applies the attribute's transform spec to a value. Only string
// values are transformed; anything else is returned as is.
func (a *Attr) Transform(value interface{}) interface{} {
	result, ok := value.(string)
	if !ok {
		log.Tracef("non-string value: value=%v", value)
		return value
	}

	// t converts an RFC3339 timestamp to local time, T to a relative time.
	if strings.ContainsAny(a.TransformSpec, "tT") {
		if ts, err := time.Parse(time.RFC3339, result); err == nil {
			local := ts.In(time.Now().Location())
			if strings.Contains(a.TransformSpec, "T") {
				result = humanize.Time(local)
			} else {
				result = local.Format("2006-01-02T15:04:05MST")
			}
			log.Tracef("time transformed: result=%s", result)
		}
	}

	// The last case letter wins so that a per-attr spec can override a global
	// one, e.g. --attrs '*::U,SiteId::l'.
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")
	switch {
	case lastL > lastU:
		result = strings.ToLower(result)
	case lastU > lastL:
		result = strings.ToUpper(result)
	}

	// Length. Positive truncates, negative elides the middle. The last number
	// wins for the same reason as case.
	if a.TransformSpec != "" {
		match := lengthRe.FindAllString(a.TransformSpec, -1)
		if len(match) != 0 {
			l, _ := strconv.Atoi(match[len(match)-1])
			abs := int(math.Abs(float64(l)))
			if len(result) > abs {
				if l < 0 {
					lr := max(abs/2-1, 0)
					result = result[:lr] + ".." + result[len(result)-lr:]
				} else {
					result = result[:l]
				}
				log.Tracef("length transformed: result=%s", result)
			}
		}
	}

	return result
}

// AttrList is a collection of Attr used to shape output fields.
type AttrList []Attr

// Set parses a comma separated --attrs value and merges it into the list.
// Each entry is key[:outputKey[:transform]]. A leading ! keeps the attr for
// filtering and sorting but leaves it out of the output. A key of * carries a
// transform applied to every attr.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		return nil
	}

	const (
		keyIdx = iota
		outputIdx
		transformIdx
	)

specloop:
	for _, spec := range strings.Split(value, ",") {
		fields := strings.Split(spec, ":")

		attr := Attr{Include: true}
		attr.Key = strings.TrimSpace(fields[keyIdx])
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = attr.Key[1:]
		}
		// Keys used to be written .Key to mean "from the root". Every key is
		// rooted at the item now, so the dot is dropped.
		attr.Key = strings.TrimPrefix(attr.Key, ".")
		if attr.Key == "" {
			return fmt.Errorf("invalid attr spec %q: empty key", spec)
		}
		if attr.Key == "*" {
			attr.Include = false
		}

		// The output key defaults to the last segment of the path.
		if len(fields) > outputIdx && strings.TrimSpace(fields[outputIdx]) != "" {
			attr.OutputKey = strings.TrimSpace(fields[outputIdx])
		} else {
			segments := strings.Split(attr.Key, ".")
			attr.OutputKey = segments[len(segments)-1]
		}

		if len(fields) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}
		log.Tracef("attr parsed: key=%s, outputKey=%s, include=%v, transform=%s",
			attr.Key, attr.OutputKey, attr.Include, attr.TransformSpec)

		// A default attr named again by the user is updated in place so the
		// column order stays stable.
		for i := range *a {
			if (*a)[i].Key == attr.Key || (*a)[i].OutputKey == attr.Key {
				(*a)[i].Include = attr.Include
				(*a)[i].OutputKey = attr.OutputKey
				(*a)[i].TransformSpec = attr.TransformSpec
				continue specloop
			}
		}

		*a = append(*a, attr)
	}

	return nil
}

// SetGlobalTransformSpec prepends the transform of the * attr, if any, to
// every attr in the list.
func (a *AttrList) SetGlobalTransformSpec() error {
	spec := ""
	for i := range *a {
		if (*a)[i].Key == "*" {
			spec = (*a)[i].TransformSpec
			break
		}
	}

	if spec == "" {
		return nil
	}
	log.Debugf("global transform: spec=%s", spec)

	for i := range *a {
		(*a)[i].TransformSpec = spec + "," + (*a)[i].TransformSpec
	}

	return nil
}

// Included returns the attrs that are rendered.
func (a AttrList) Included() AttrList {
	result := make(AttrList, 0, len(a))
	for _, attr := range a {
		if attr.Include {
			result = append(result, attr)
		}
	}
	return result
}

// String returns the list in key:outputKey:transform form.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		result = append(result, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}

// Type returns the flag type for use with the flag.Value interface.
func (a *AttrList) Type() string { return "list" }
