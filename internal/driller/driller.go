// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var segmentRe = regexp.MustCompile(`^([a-zA-Z0-9_:-]+)(\[(\d+|\*)?\])?$`)

// Driller resolves a dotted path in an item of a response document.
//
// Segments may carry an index, Name[2]. An unindexed single element array is
// unwrapped, longer arrays are returned whole. A segment that follows an AWS
// tag list selects the Value of the tag with that Key, so Tags.Name yields
// the Name tag.
func Driller(jsonData string, path string) gjson.Result {
	current := gjson.Parse(jsonData)

	for _, p := range strings.Split(path, ".") {
		matches := segmentRe.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{}
		}

		key := matches[1]
		index := -1
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		var val gjson.Result
		if isTagList(current) {
			val = tagValue(current, key)
		} else {
			val = current.Get(gjson.Escape(key))
		}

		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == -1:
				if len(arr) == 1 && !isTagList(val) {
					val = arr[0]
				}
			case index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		}

		current = val
	}

	return current
}

// isTagList reports whether r is a list of {Key, Value} objects.
func isTagList(r gjson.Result) bool {
	if !r.IsArray() {
		return false
	}
	arr := r.Array()
	if len(arr) == 0 {
		return false
	}
	for _, e := range arr {
		if !e.IsObject() || !e.Get("Key").Exists() {
			return false
		}
	}
	return true
}

func tagValue(tags gjson.Result, key string) gjson.Result {
	for _, tag := range tags.Array() {
		if tag.Get("Key").String() == key {
			return tag.Get("Value")
		}
	}
	return gjson.Result{}
}
