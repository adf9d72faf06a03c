//go:build js && wasm

// package main provides the Wasm app.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"syscall/js"
	"time"

	"github.com/theory/isodatetime/datetime"
	"github.com/theory/isodatetime/datetime/format"
	"github.com/theory/isodatetime/datetime/parser"
	"github.com/theory/isodatetime/datetime/types"
	"github.com/theory/isodatetime/datetime/unit"
)

const (
	optParse int = 1 << iota
	optFormat
	optLocal
	optLocalTZ
	optIndent
)

// convert parses or formats a datetime.
//
//	convert(datetime, unit, casting, offset, opts)
//
// Arguments are strings except for opts. An empty offset formats in the
// local time zone when optLocal is set.
func convert(_ js.Value, args []js.Value) any {
	text := args[0].String()
	unitName := args[1].String()
	casting := args[2].String()
	offset := args[3].String()
	opts := args[4].Int()

	return execute(text, unitName, casting, offset, opts)
}

func main() {
	stream := make(chan struct{})

	js.Global().Set("convert", js.FuncOf(convert))
	js.Global().Set("optParse", js.ValueOf(optParse))
	js.Global().Set("optFormat", js.ValueOf(optFormat))
	js.Global().Set("optLocal", js.ValueOf(optLocal))
	js.Global().Set("optLocalTZ", js.ValueOf(optLocalTZ))
	js.Global().Set("optIndent", js.ValueOf(optIndent))

	<-stream
}

// result is the JSON shape returned to the page.
type result struct {
	Value   datetime.Value `json:"value"`
	Unit    string         `json:"unit"`
	Local   bool           `json:"local"`
	Special bool           `json:"special"`
	Output  string         `json:"output,omitempty"`
	Length  int            `json:"length"`
}

func execute(text, unitName, casting, offset string, opts int) string {
	u, err := unit.ParseUnit(unitName)
	if err != nil {
		return fmt.Sprintf("Error %v", err)
	}
	rule := unit.SameKind
	if casting != "" {
		if rule, err = unit.ParseCasting(casting); err != nil {
			return fmt.Sprintf("Error %v", err)
		}
	}

	// Use local time zone if requested.
	ctx := types.ContextWithTZ(context.Background(), time.UTC)
	if opts&optLocalTZ == optLocalTZ {
		//nolint:gosmopolitan // We want the browser time.
		ctx = types.ContextWithTZ(ctx, time.Local)
	}

	var (
		parseOpts  []parser.Option
		formatOpts = []format.Option{format.WithUnit(u), format.WithCasting(rule)}
	)
	if opts&optParse == optParse {
		parseOpts = append(parseOpts, parser.WithUnit(u), parser.WithCasting(rule))
	}
	if opts&optLocal == optLocal {
		formatOpts, err = assembleLocal(formatOpts, offset)
		if err != nil {
			return fmt.Sprintf("Error %v", err)
		}
	}

	res, err := datetime.Parse(ctx, text, parseOpts...)
	if err != nil {
		return fmt.Sprintf("Error %v", err)
	}

	out := result{
		Value:   datetime.NewValue(res),
		Unit:    res.Unit.String(),
		Local:   res.Local,
		Special: res.Special,
		Length:  datetime.RequiredLength(res.Local, res.Unit),
	}
	if opts&optFormat == optFormat {
		if out.Output, err = datetime.Format(ctx, res.Value, formatOpts...); err != nil {
			return fmt.Sprintf("Error %v", err)
		}
	}

	// Serialize the result
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if opts&optIndent == optIndent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Sprintf("Error serializing results: %v", err)
	}

	return html.EscapeString(buf.String())
}

func assembleLocal(opts []format.Option, offset string) ([]format.Option, error) {
	if offset == "" {
		return append(opts, format.WithLocal()), nil
	}
	var minutes int
	if err := json.Unmarshal([]byte(offset), &minutes); err != nil {
		return nil, fmt.Errorf("parsing offset %q: %w", offset, err)
	}
	return append(opts, format.WithOffset(minutes)), nil
}
