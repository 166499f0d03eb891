package main

import (
	"io"

	"braces.dev/errtrace"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/gouri/dump"
	"github.com/ghettovoice/gouri/uri"
)

type printer interface {
	print(v *uri.View) error
	debug(v *uri.View) error
	close() error
}

func newPrinter(w io.Writer, format string) printer {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return &encPrinter{enc: enc.Encode}
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &encPrinter{enc: enc.Encode, closer: enc.Close}
	default:
		return textPrinter{w}
	}
}

type textPrinter struct{ w io.Writer }

func (p textPrinter) print(v *uri.View) error {
	if _, err := dump.Write(p.w, v); err != nil {
		return errtrace.Wrap(err)
	}
	_, err := io.WriteString(p.w, "\n")
	return errtrace.Wrap(err)
}

func (p textPrinter) debug(v *uri.View) error {
	_, err := dump.WriteDebug(p.w, v)
	return errtrace.Wrap(err)
}

func (textPrinter) close() error { return nil }

type encPrinter struct {
	enc    func(any) error
	closer func() error
}

func (p *encPrinter) print(v *uri.View) error { return errtrace.Wrap(p.enc(newRecord(v, false))) }

func (p *encPrinter) debug(v *uri.View) error { return errtrace.Wrap(p.enc(newRecord(v, true))) }

func (p *encPrinter) close() error {
	if p.closer == nil {
		return nil
	}
	return errtrace.Wrap(p.closer())
}

type record struct {
	URI        string      `json:"uri" yaml:"uri"`
	Error      string      `json:"error,omitempty" yaml:"error,omitempty"`
	Bitset     string      `json:"bitset,omitempty" yaml:"bitset,omitempty"`
	Components []component `json:"components,omitempty" yaml:"components,omitempty"`
}

type component struct {
	Name   string  `json:"name" yaml:"name"`
	Value  string  `json:"value" yaml:"value"`
	Offset *uint16 `json:"offset,omitempty" yaml:"offset,omitempty"`
	Length *uint16 `json:"length,omitempty" yaml:"length,omitempty"`
	Query  []pair  `json:"query,omitempty" yaml:"query,omitempty"`
}

type pair struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// newRecord converts v to its encoded form.
// Debug records carry the bitset and the range of every component.
func newRecord(v *uri.View, debug bool) record {
	rec := record{URI: v.Source()}
	if !v.IsValid() {
		rec.Error = v.Code().String()
		return rec
	}
	if debug {
		rec.Bitset = v.Present().String()
	}
	for c, s := range v.All() {
		comp := component{Name: c.String(), Value: s}
		if debug {
			r := v.Range(c)
			comp.Offset, comp.Length = &r.Offset, &r.Length
		}
		if c == uri.Query {
			for _, p := range v.DecodeQuery(nil) {
				comp.Query = append(comp.Query, pair{p.Key, p.Value})
			}
		}
		rec.Components = append(rec.Components, comp)
	}
	return rec
}
