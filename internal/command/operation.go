// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/attrs"
	"github.com/nmctl/nmctl/internal/cacheutil"
	"github.com/nmctl/nmctl/internal/config"
	"github.com/nmctl/nmctl/internal/confirm"
	"github.com/nmctl/nmctl/internal/filters"
	"github.com/nmctl/nmctl/internal/log"
	"github.com/nmctl/nmctl/internal/meta"
	"github.com/nmctl/nmctl/internal/nm"
	"github.com/nmctl/nmctl/internal/output"
)

// Impact levels of an operation. Mutating operations prompt for confirmation
// when their impact reaches the configured threshold.
const (
	ImpactNone   = confirm.ImpactNone
	ImpactLow    = confirm.ImpactLow
	ImpactMedium = confirm.ImpactMedium
	ImpactHigh   = confirm.ImpactHigh
)

// DefaultCacheTTL applies when the config has no cache.ttl.
const DefaultCacheTTL = 5 * time.Minute

// ErrRepeatedToken aborts auto-iteration when the service hands back the token
// it was just given.
var ErrRepeatedToken = errors.New("service returned the same continuation token twice")

// Pager reads and writes the continuation token of a list operation.
type Pager[I, O any] struct {
	Token    func(*O) *string
	SetToken func(*I, *string)
}

// Operation describes one Network Manager API operation. Run drives it
// through the common template: bind, warn, confirm, call, paginate, select,
// render.
type Operation[I, O any] struct {
	// API operation name, e.g. GetLinks.
	Name string
	// Subcommand name, e.g. get-links.
	Use      string
	Usage    string
	Category string
	Impact   confirm.Impact

	// Default --select path and the attrs rendered for it.
	Select string
	Attrs  []string

	Flags []cli.Flag
	// Flags the service requires. Missing ones are warned about only.
	Required []string
	// Flag naming the resource in confirmation prompts.
	Target string

	Build func(b *Binder, in *I)
	Call  func(api nm.API, ctx context.Context, in *I, optFns ...func(*nmv2.Options)) (*O, error)

	// Paged list operations get --max-results, --next-token and --no-paginate.
	// Pager defaults to the NextToken fields of I and O.
	Paged bool
	Pager *Pager[I, O]

	// Augment binds server-side (_key=value) filters into the input.
	Augment func(in *I, serverSide map[string]string) error
}

// Command builds the subcommand for the operation.
func (op *Operation[I, O]) Command(m meta.Meta) *cli.Command {
	flags := append([]cli.Flag{}, op.Flags...)
	flags = append(flags, NewGlobalFlags(op.Use, m.Config.Source)...)
	flags = append(flags, selectFlag(op.Select))

	if op.Impact == ImpactNone {
		flags = append(flags, cacheFlag())
	} else {
		flags = append(flags, forceFlag(), confirmFlag())
	}
	if op.Paged {
		flags = append(flags, NewPagingFlags()...)
	}
	if _, ok := op.itemType(); ok {
		flags = append(flags, schemaFlag())
	}

	return &cli.Command{
		Name:     op.Use,
		Usage:    op.Usage,
		Category: op.Category,
		Flags:    flags,
		Metadata: map[string]any{
			"meta":      m,
			"operation": op.Name,
			"impact":    op.Impact,
		},
		Action: op.Run,
	}
}

// Run executes the operation template.
func (op *Operation[I, O]) Run(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("operation: name=%s", op.Name)

	if cmd.Bool("schema") {
		typ, _ := op.itemType()
		output.DumpSchema(typ, stdout(cmd, m))
		return nil
	}

	WarnMissing(cmd, op.Required)

	in := new(I)
	b := NewBinder(ctx, cmd, m)
	if op.Build != nil {
		op.Build(b, in)
	}
	if op.Paged {
		if v := b.Int32("max-results"); v != nil {
			setField(in, "MaxResults", v)
		}
	}
	if err := b.Err(); err != nil {
		return err
	}

	if err := op.augment(cmd, in); err != nil {
		return err
	}

	proceed, err := op.confirm(cmd, m)
	if err != nil || !proceed {
		return err
	}

	raw, err := op.fetch(ctx, cmd, m, in)
	if err != nil {
		return err
	}

	return op.render(cmd, m, raw)
}

// augment binds server-side filters. Commands without an Augment reject them
// rather than silently returning unfiltered results.
func (op *Operation[I, O]) augment(cmd *cli.Command, in *I) error {
	serverSide, err := filters.ServerSide(cmd.String("filter"))
	if err != nil {
		return err
	}
	if len(serverSide) == 0 {
		return nil
	}
	if op.Augment == nil {
		return fmt.Errorf("%s does not support server-side filters", op.Use)
	}
	log.Debugf("server-side filters: %v", serverSide)
	return op.Augment(in, serverSide)
}

func (op *Operation[I, O]) confirm(cmd *cli.Command, m meta.Meta) (bool, error) {
	if op.Impact == ImpactNone {
		return true, nil
	}

	spec, _ := config.GetString("confirm", confirm.DefaultThreshold.String())
	threshold, err := confirm.ParseImpact(spec)
	if err != nil {
		return false, err
	}

	if !confirm.Needed(op.Impact, threshold, cmd.Bool("force"), cmd.Bool("confirm")) {
		return true, nil
	}

	target := ""
	if op.Target != "" {
		target = cmd.String(op.Target)
	}

	c := m.Confirmer
	if c == nil {
		c = &confirm.Confirmer{In: m.In, Out: stderr(cmd, m), Interactive: m.Interactive}
	}
	ok, err := c.Ask(op.Name, target)
	if err != nil {
		return false, err
	}
	if !ok {
		log.Infof("declined: operation=%s, target=%s", op.Name, target)
	}
	return ok, nil
}

// fetch returns the response document, from the cache when allowed.
func (op *Operation[I, O]) fetch(ctx context.Context, cmd *cli.Command, m meta.Meta, in *I) ([]byte, error) {
	settings := SettingsFrom(cmd)

	var cacheKey string
	useCache := op.Impact == ImpactNone && cmd.Bool("cache") && cacheutil.Enabled()
	if useCache {
		body, _ := json.Marshal(in)
		cacheKey = responseKey(op.Name, settings, op.autoIterate(cmd), body)
		ttl, _ := config.GetDuration("cache.ttl", DefaultCacheTTL)
		if entry, ok := cacheutil.Read(nil, cacheKey, ttl); ok {
			log.WithField("age", entry.Age().Round(time.Second)).Debugf("served from cache: operation=%s", op.Name)
			return entry.Data, nil
		}
	}

	if m.NewClient == nil {
		return nil, errors.New("no client factory configured")
	}
	api, region, err := m.NewClient(ctx, settings)
	if err != nil {
		return nil, err
	}

	out, err := op.invoke(ctx, cmd, m, api, in)
	if err != nil {
		return nil, nm.Friendly(err, nm.ErrorContext{Operation: op.Name, Region: region})
	}

	raw, err := Marshal(out)
	if err != nil {
		return nil, err
	}

	if useCache {
		if err := cacheutil.Write(nil, cacheKey, raw); err != nil {
			log.WithError(err).Warnf("cache write failed")
		}
	}
	return raw, nil
}

func (op *Operation[I, O]) invoke(ctx context.Context, cmd *cli.Command, m meta.Meta, api nm.API, in *I) (*O, error) {
	call := func(ctx context.Context, in *I) (*O, error) {
		return op.Call(api, ctx, in)
	}

	pager := op.pager()

	if !op.autoIterate(cmd) {
		if op.Paged {
			pager.SetToken(in, optional(cmd, "next-token"))
		}
		out, err := call(ctx, in)
		if err != nil {
			return nil, err
		}
		if op.Paged {
			if token := awsv2.ToString(pager.Token(out)); token != "" {
				log.Infof("more results: next-token=%s", token)
				fmt.Fprintf(stderr(cmd, m), "NextToken: %s\n", token)
			}
		}
		return out, nil
	}

	var combined *O
	err := Paginate(ctx, in, call, pager, func(page *O) error {
		if combined == nil {
			combined = page
			return nil
		}
		mergePages(combined, page)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if combined != nil {
		setField(combined, "NextToken", nil)
	}
	return combined, nil
}

// responseKey identifies a cached response. Parts are labelled so that a
// region and a profile of the same name never collide.
func responseKey(name string, s nm.Settings, all bool, body []byte) string {
	return cacheutil.Key(name,
		"region="+s.Region,
		"profile="+s.Profile,
		"endpoint="+s.EndpointURL,
		fmt.Sprintf("all=%t", all),
		string(body))
}

// autoIterate reports whether every page should be fetched.
func (op *Operation[I, O]) autoIterate(cmd *cli.Command) bool {
	return op.Paged && !cmd.Bool("no-paginate") && !cmd.IsSet("next-token")
}

func (op *Operation[I, O]) pager() Pager[I, O] {
	if op.Pager != nil {
		return *op.Pager
	}
	return Pager[I, O]{
		Token: func(out *O) *string {
			token, _ := getField(out, "NextToken").(*string)
			return token
		},
		SetToken: func(in *I, token *string) { setField(in, "NextToken", token) },
	}
}

// render applies --select and writes the result.
func (op *Operation[I, O]) render(cmd *cli.Command, m meta.Meta, raw []byte) error {
	sel := cmd.String("select")

	// ^flag passes a parameter value through instead of the response.
	if name, ok := strings.CutPrefix(sel, "^"); ok {
		value, err := flagValue(cmd, name)
		if err != nil {
			return err
		}
		raw, err = json.Marshal(map[string]any{name: value})
		if err != nil {
			return err
		}
		sel = name
	}

	var defaults []string
	if sel == op.Select {
		defaults = op.Attrs
	}
	al, err := BuildAttrs(cmd, defaults...)
	if err != nil {
		return err
	}

	// List tables end with a row count when titled.
	var footer func([]map[string]interface{}) error
	if op.Paged && cmd.Bool("titles") {
		footer = func(rows []map[string]interface{}) error {
			cmd.Metadata["footer"] = english.Plural(len(rows), "row", "")
			return nil
		}
	}

	return output.SliceDiceSpit(*bytes.NewBuffer(raw), al, cmd, sel, stdout(cmd, m), footer)
}

// itemType is the SDK type rendered by default, for --schema.
func (op *Operation[I, O]) itemType() (reflect.Type, bool) {
	typ, ok := output.SchemaAt(reflect.TypeOf((*O)(nil)), op.Select)
	if !ok || typ.Kind() != reflect.Struct || op.Select == "" {
		return nil, false
	}
	return typ, true
}

// Paginate calls call until the continuation token is empty, handing each page
// to emit. Pages are requested one at a time.
func Paginate[I, O any](
	ctx context.Context,
	in *I,
	call func(context.Context, *I) (*O, error),
	pager Pager[I, O],
	emit func(*O) error,
) error {
	var last string
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := call(ctx, in)
		if err != nil {
			return err
		}
		if err := emit(out); err != nil {
			return err
		}

		token := awsv2.ToString(pager.Token(out))
		log.Debugf("page fetched: page=%d, more=%t", page, token != "")
		if token == "" {
			return nil
		}
		if token == last {
			return fmt.Errorf("%w: %s", ErrRepeatedToken, token)
		}
		last = token
		pager.SetToken(in, awsv2.String(token))
	}
}

// WarnMissing warns about each required flag that was not set and returns
// their names. The call still goes ahead and the service validates.
func WarnMissing(cmd *cli.Command, required []string) []string {
	var missing []string
	for _, name := range required {
		if cmd.IsSet(name) {
			continue
		}
		missing = append(missing, name)
		warnMissing(cmd, "--"+name)
	}
	return missing
}

func warnMissing(cmd *cli.Command, flag string) {
	log.Warnf("required flag not set: %s", flag)
	fmt.Fprintf(stderr(cmd, GetMeta(cmd)), "warning: required flag %s not set, the service may reject the request\n", flag)
}

// Marshal renders an SDK output as JSON without its ResultMetadata.
func Marshal(out any) ([]byte, error) {
	raw, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return raw, nil
	}
	if _, ok := doc["ResultMetadata"]; !ok {
		return raw, nil
	}
	delete(doc, "ResultMetadata")
	return json.Marshal(doc)
}

// flagValue returns the value of a flag of the current command for ^name.
func flagValue(cmd *cli.Command, name string) (any, error) {
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			if n == name {
				return cmd.Value(name), nil
			}
		}
	}
	return nil, fmt.Errorf("--select ^%s: no such flag", name)
}

// mergePages appends the list fields of next onto acc.
func mergePages[O any](acc, next *O) {
	av := reflect.ValueOf(acc).Elem()
	nv := reflect.ValueOf(next).Elem()
	for i := 0; i < av.NumField(); i++ {
		f := av.Field(i)
		if f.Kind() == reflect.Slice && f.CanSet() {
			f.Set(reflect.AppendSlice(f, nv.Field(i)))
		}
	}
}

// setField sets an exported field by name when it exists and the types
// match.
func setField(target any, name string, value any) {
	v := reflect.ValueOf(target).Elem()
	f := v.FieldByName(name)
	if !f.IsValid() || !f.CanSet() {
		return
	}
	if value == nil {
		f.Set(reflect.Zero(f.Type()))
		return
	}
	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(f.Type()) {
		f.Set(val)
	}
}

func getField(target any, name string) any {
	v := reflect.ValueOf(target)
	if v.IsNil() {
		return nil
	}
	f := v.Elem().FieldByName(name)
	if !f.IsValid() {
		return nil
	}
	return f.Interface()
}

// BuildAttrs constructs an AttrList with defaults and extras from --attrs,
// then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (attrs.AttrList, error) {
	var al attrs.AttrList
	for _, d := range defaults {
		if err := al.Set(d); err != nil {
			return nil, err
		}
	}
	if err := al.Set(cmd.String("attrs")); err != nil {
		return nil, err
	}
	if err := al.SetGlobalTransformSpec(); err != nil {
		return nil, err
	}
	return al, nil
}
