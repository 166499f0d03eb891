package uri

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"
)

// URI is a parsed URI that owns its source through a [Storage].
// The zero value is an empty URI backed by a [DynamicStorage] on first use.
type URI struct {
	View
	store Storage
}

// ParseOptions configures [Parse] and [FromParts].
type ParseOptions struct {
	// Storage receives the source. Nil selects a new [DynamicStorage].
	// The storage must not be shared with another URI.
	Storage Storage
	// Raw disables decoding of percent escapes before parsing.
	Raw bool
}

func (o *ParseOptions) storage() Storage {
	if o == nil || o.Storage == nil {
		return NewDynamicStorage()
	}
	return o.Storage
}

func (o *ParseOptions) raw() bool { return o != nil && o.Raw }

// Parse stores src and parses the stored copy.
// Percent escapes are decoded once before parsing unless opts.Raw is set.
// Parse never fails: check [View.IsValid] or [View.Err] on the result.
func Parse[T ~string | ~[]byte](src T, opts *ParseOptions) *URI {
	s := string(src)
	if !opts.raw() {
		s = DecodeHex(s)
	}
	u := &URI{store: opts.storage()}
	u.assign(s)
	return u
}

// FromParts builds a URI from the given components, see [Build].
func FromParts(parts []Part, opts *ParseOptions) *URI {
	return Parse(Build(parts...), opts)
}

// assign swaps src into the storage and re-parses.
// All ranges of the previous text are dropped.
func (u *URI) assign(src string) string {
	if u.store == nil {
		u.store = NewDynamicStorage()
	}
	old, err := u.store.Swap(src)
	if err != nil {
		u.src, u.tbl, u.code = "", Table{}, TooLong
		return old
	}
	u.reset(u.store.Source())
	return old
}

// Replace stores src as is, re-parses it and returns the previous text.
// If the storage cannot hold src, the URI is left empty with [TooLong].
func (u *URI) Replace(src string) string { return u.assign(src) }

// Edit overlays parts on the current components, rebuilds the text and
// re-parses it. It returns the new component count.
// Editing a part of the authority drops the raw authority; editing user or
// password drops the raw userinfo. See [Rebuild].
// If the merged component set is empty, the URI is left unchanged.
func (u *URI) Edit(parts ...Part) int {
	cs := rebuildSet(&u.View, parts)
	if cs.mask == 0 {
		return u.Count()
	}
	u.assign(cs.build())
	return u.Count()
}

// Storage returns the storage holding the source.
func (u *URI) Storage() Storage {
	if u == nil {
		return nil
	}
	return u.store
}

// Clone returns a copy of the URI with its own storage.
// Storages that do not provide a Clone method are replaced with a [DynamicStorage].
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	var store Storage
	if c, ok := u.store.(interface{ Clone() Storage }); ok {
		store = c.Clone()
	} else {
		store = NewDynamicStorage()
	}
	u2 := &URI{store: store}
	u2.assign(u.Source())
	u2.tbl.Mask, u2.code = u.tbl.Mask, u.code
	return u2
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.Source()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The text is parsed as is into the current storage.
func (u *URI) UnmarshalText(text []byte) error {
	u.assign(string(text))
	if err := u.Err(); err != nil {
		return errtrace.Wrap(err)
	}
	return nil
}
