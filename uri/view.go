package uri

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/ioutil"
)

// View is a parsed URI over a source it does not own.
// The zero value is an empty view with no components.
type View struct {
	src  string
	tbl  Table
	code ErrorCode
}

// NewView parses src as is, without decoding escapes.
// Component values returned by the view are substrings of src.
func NewView[T ~string | ~[]byte](src T) *View {
	v := new(View)
	v.reset(string(src))
	return v
}

func (v *View) reset(src string) {
	v.src = src
	v.tbl, v.code = Scan(src)
}

// Source returns the text the view was parsed from.
func (v *View) Source() string {
	if v == nil {
		return ""
	}
	return v.src
}

// Table returns a copy of the range table.
func (v *View) Table() Table {
	if v == nil {
		return Table{}
	}
	return v.tbl
}

// Range returns the range of c in [View.Source].
func (v *View) Range(c Component) Range {
	if v == nil {
		return Range{}
	}
	return v.tbl.Range(c)
}

// Component returns the value of c.
// It returns an empty string if c is absent or out of range.
func (v *View) Component(c Component) string {
	if v == nil {
		return ""
	}
	return v.tbl.Range(c).In(v.src)
}

// Pair is a name and value pair.
type Pair struct {
	Key, Value string
}

// NamedPair returns the component name together with its value.
// It returns a zero pair for [CountOf].
func (v *View) NamedPair(c Component) Pair {
	if !c.IsValid() {
		return Pair{}
	}
	return Pair{c.String(), v.Component(c)}
}

// Count returns the number of present components.
func (v *View) Count() int {
	if v == nil {
		return 0
	}
	return v.tbl.Count()
}

// Test reports whether c is present. [CountOf] tests for any component.
func (v *View) Test(c Component) bool {
	if v == nil {
		return false
	}
	return v.tbl.Mask.Test(c)
}

// Any reports whether any component is present.
func (v *View) Any() bool { return v.Test(CountOf) }

// Set marks c present. [CountOf] marks all components present.
// A component marked present without a range of its own has an empty value.
func (v *View) Set(c Component) {
	if v != nil {
		v.tbl.Mask.Set(c)
	}
}

// Clear marks c absent. [CountOf] clears all components.
func (v *View) Clear(c Component) {
	if v != nil {
		v.tbl.Mask.Clear(c)
	}
}

// Present returns the presence bitset.
func (v *View) Present() Presence {
	if v == nil {
		return 0
	}
	return v.tbl.Mask
}

// Code returns the parse error code.
// It is always [NoError] while any component is present.
func (v *View) Code() ErrorCode {
	if v == nil || v.tbl.Mask != 0 {
		return NoError
	}
	return v.code
}

// Err returns the parse error, or nil.
func (v *View) Err() error {
	return errtrace.Wrap(v.Code().Err())
}

// IsValid reports whether the source was parsed successfully.
func (v *View) IsValid() bool { return v.Count() > 0 }

// DecodeQuery splits the query component into pairs.
// It returns nil if the query is absent.
func (v *View) DecodeQuery(opts *QueryOptions) Pairs {
	if !v.Test(Query) {
		return nil
	}
	return DecodeQuery(v.Component(Query), opts)
}

// All returns an iterator over the present components in enumeration order.
func (v *View) All() iter.Seq2[Component, string] {
	return func(yield func(Component, string) bool) {
		for c := range CountOf {
			if v.Test(c) && !yield(c, v.Component(c)) {
				return
			}
		}
	}
}

// Parts returns the present components as parts suitable for [Build].
func (v *View) Parts() []Part {
	parts := make([]Part, 0, v.Count())
	for c, s := range v.All() {
		parts = append(parts, Part{c, s})
	}
	return parts
}

// Equal reports whether val has the same components with the same values.
// Sources are not compared.
func (v *View) Equal(val any) bool {
	var other *View
	switch o := val.(type) {
	case View:
		other = &o
	case *View:
		other = o
	case URI:
		other = &o.View
	case *URI:
		if o != nil {
			other = &o.View
		}
	default:
		return false
	}

	if v == other {
		return true
	} else if v == nil || other == nil {
		return false
	}

	if v.Present() != other.Present() {
		return false
	}
	for c, s := range v.All() {
		if s != other.Component(c) {
			return false
		}
	}
	return v.Code() == other.Code()
}

// RenderTo writes the source to w.
func (v *View) RenderTo(w io.Writer) (num int, err error) {
	if v == nil {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(v.src) //nolint:errcheck
	return errtrace.Wrap2(cw.Result())
}

// String returns the source.
func (v *View) String() string { return v.Source() }

// Format implements [fmt.Formatter].
// %s and %v print the source, %+s and %+v print every present component, %q a quoted source.
func (v *View) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprint(f, strconv.Quote(v.String()))
		return
	case 's', 'v':
		if f.Flag('+') {
			v.formatParts(f)
			return
		}
		if !f.Flag('#') {
			fmt.Fprint(f, v.String())
			return
		}
		fallthrough
	default:
		type hideMethods View
		type View hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*View)(v))
		return
	}
}

func (v *View) formatParts(w io.Writer) {
	if !v.IsValid() {
		fmt.Fprintf(w, "%q error: %s", v.Source(), v.Code())
		return
	}
	first := true
	for c, s := range v.All() {
		if !first {
			fmt.Fprint(w, " ")
		}
		first = false
		fmt.Fprintf(w, "%s=%q", c, s)
	}
}

// LogValue implements [slog.LogValuer].
func (v *View) LogValue() slog.Value {
	if v == nil {
		return slog.Value{}
	}
	if !v.IsValid() {
		return slog.GroupValue(
			slog.String("source", v.src),
			slog.String("error", v.Code().String()),
		)
	}
	attrs := make([]slog.Attr, 0, v.Count())
	for c, s := range v.All() {
		attrs = append(attrs, slog.String(c.String(), s))
	}
	return slog.GroupValue(attrs...)
}
