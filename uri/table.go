package uri

import "math"

// MaxLen is the maximum accepted source length in bytes.
const MaxLen = math.MaxUint16

// Range locates a component inside the source it was scanned from.
// It is meaningful only for that source.
type Range struct {
	Offset, Length uint16
}

// End returns the offset just past the range.
func (r Range) End() int { return int(r.Offset) + int(r.Length) }

// In returns the text covered by r in src.
// It returns an empty string if the range does not fit src.
func (r Range) In(src string) string {
	if r.End() > len(src) {
		return ""
	}
	return src[r.Offset:r.End()]
}

// Table holds the ranges of all components and the presence of each.
// Ranges of absent components are zero.
type Table struct {
	Ranges [CountOf]Range
	Mask   Presence
}

// Count returns the number of present components.
func (t *Table) Count() int { return t.Mask.Count() }

// Range returns the range of c. It returns a zero range for absent components.
func (t *Table) Range(c Component) Range {
	if !c.IsValid() || !t.Mask.Test(c) {
		return Range{}
	}
	return t.Ranges[c]
}

func (t *Table) set(c Component, off, n int) {
	t.Ranges[c] = Range{uint16(off), uint16(n)} //nolint:gosec
	t.Mask.Set(c)
}
