// Package dump writes human-readable listings of parsed URIs.
//
// The listings only use the public accessors of [uri.View], so any value
// providing them can be dumped.
package dump

//go:generate go tool errtrace -w .

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/util"
	"github.com/ghettovoice/gouri/uri"
)

// Source is a parsed URI as seen by [Write].
type Source interface {
	Source() string
	Code() uri.ErrorCode
	Test(c uri.Component) bool
	Component(c uri.Component) string
	DecodeQuery(opts *uri.QueryOptions) uri.Pairs
}

// DebugSource is a parsed URI as seen by [WriteDebug].
type DebugSource interface {
	Source
	Present() uri.Presence
	Range(c uri.Component) uri.Range
}

const empty = "(empty)"

// Write writes the source, then one line per present component.
// Query pairs are listed below the query line. A failed parse is written as
// an error line followed by the source.
func Write(w io.Writer, src Source) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if !src.Test(uri.CountOf) {
		cw.Fprintf("error: %d (%s)\n", src.Code(), src.Code())
	}
	cw.Fprintf("%-12s%s\n", "uri", src.Source())
	for c := range uri.CountOf {
		if !src.Test(c) {
			continue
		}
		cw.Fprintf("%-12s%s\n", c, orEmpty(src.Component(c)))
		if c != uri.Query {
			continue
		}
		for _, p := range src.DecodeQuery(nil) {
			cw.Fprintf("   %-12s%s\n", p.Key, orEmpty(p.Value))
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// WriteDebug writes the [Write] listing followed by the presence bitset and
// the offset and length of every present component.
func WriteDebug(w io.Writer, src DebugSource) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.Call(func(w io.Writer) (int, error) { return Write(w, src) })
	p := src.Present()
	cw.Fprintf("bitset %s (%#x)\n", p, uint16(p))
	for c := range uri.CountOf {
		if src.Test(c) {
			r := src.Range(c)
			cw.Fprintf("%-12s%d (%d)\n", c, r.Offset, r.Length)
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the [Write] listing.
func String(src Source) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	Write(sb, src) //nolint:errcheck
	return sb.String()
}

func orEmpty(s string) string {
	if s == "" {
		return empty
	}
	return s
}
