// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"
)

// maxSchemaDepth limits how far nested structs are expanded.
const maxSchemaDepth = 2

var timeType = reflect.TypeOf(time.Time{})

// SchemaAt returns the type found by following path through typ, one
// exported field name per dotted segment. Slices and pointers are stepped
// through, so SchemaAt(GetLinksOutput, "Links") is the Link struct.
func SchemaAt(typ reflect.Type, path string) (reflect.Type, bool) {
	typ = indirect(typ)
	if path == "" || path == "*" {
		return typ, true
	}

	for _, segment := range strings.Split(path, ".") {
		if typ.Kind() != reflect.Struct {
			return nil, false
		}
		field, ok := typ.FieldByName(segment)
		if !ok {
			return nil, false
		}
		typ = indirect(field.Type)
	}
	return typ, true
}

// DumpSchema writes the sorted attribute paths available to --attrs,
// --filter and --sort for items of typ.
func DumpSchema(typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	paths := schemaWalker("", indirect(typ), 0)
	if len(paths) == 0 {
		log.Debugf("no schema paths: type=%s", typ)
		return
	}
	sort.Strings(paths)

	fmt.Fprintln(w, `Attributes available to --attrs, --filter and --sort. Tag values are
addressed as Tags.<key>.`)
	fmt.Fprintln(w, "")
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
}

func schemaWalker(holder string, typ reflect.Type, depth int) []string {
	if typ.Kind() != reflect.Struct {
		return nil
	}

	paths := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() || field.Name == "ResultMetadata" {
			continue
		}

		name := field.Name
		if holder != "" {
			name = holder + "." + name
		}
		paths = append(paths, name)

		ft := indirect(field.Type)
		if ft.Kind() == reflect.Struct && ft != timeType && depth < maxSchemaDepth {
			paths = append(paths, schemaWalker(name, ft, depth+1)...)
		}
	}

	return paths
}

// indirect steps through pointers and slices to the element type.
func indirect(typ reflect.Type) reflect.Type {
	for typ.Kind() == reflect.Ptr || typ.Kind() == reflect.Slice {
		typ = typ.Elem()
	}
	return typ
}
