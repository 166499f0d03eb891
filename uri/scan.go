package uri

import (
	"strings"

	"github.com/ghettovoice/gouri/internal/grammar"
)

// Scan locates the components of src.
// On failure it returns a zero table and the reason. A source without any
// delimiter, such as "example", scans to an empty table with [NoError].
//
// Scan does not decode escapes: delimiters are matched on the text as given.
func Scan(src string) (Table, ErrorCode) {
	if code := precheck(src); code != NoError {
		return Table{}, code
	}

	var (
		tbl Table
		pos int
	)
	if i := strings.IndexByte(src, ':'); i >= 0 {
		tbl.set(Scheme, 0, i)
		pos = i + 1
	}

	// The fragment starts at the first '#', the query at the first '?' before it.
	// Everything else ends at whichever comes first.
	frag := indexFrom(src, pos, '#')
	qend := len(src)
	if frag >= 0 {
		qend = frag
	}
	query := indexFrom(src[:qend], pos, '?')
	tail := qend
	if query >= 0 {
		tail = query
	}

	switch {
	case query == pos:
		// opaque query right after the scheme: magnet:?xt=...
	case scanAuthority(&tbl, src, pos, tail):
	default:
		if i := strings.IndexByte(src[pos:tail], '/'); i >= 0 {
			tbl.set(Path, pos+i, tail-pos-i)
		} else if tbl.Mask.Test(Scheme) {
			tbl.set(Path, pos, tail-pos)
		}
	}

	if query >= 0 {
		tbl.set(Query, query+1, qend-query-1)
	}
	if frag >= 0 {
		tbl.set(Fragment, frag+1, len(src)-frag-1)
	}
	return tbl, NoError
}

// scanAuthority fills the authority, its parts and the path that follows it.
// It reports false if there is no "//" in src[pos:tail].
func scanAuthority(tbl *Table, src string, pos, tail int) bool {
	i := strings.Index(src[pos:tail], "//")
	if i < 0 {
		return false
	}
	start := pos + i + 2
	end := tail
	if j := strings.IndexByte(src[start:tail], '/'); j >= 0 {
		end = start + j
	}
	tbl.set(Authority, start, end-start)

	hs := start
	if at := strings.IndexByte(src[start:end], '@'); at >= 0 {
		at += start
		tbl.set(Userinfo, start, at-start)
		if c := strings.IndexByte(src[start:at], ':'); c >= 0 {
			c += start
			tbl.set(User, start, c-start)
			if at > c+1 {
				tbl.set(Password, c+1, at-c-1)
			}
		} else {
			tbl.set(User, start, at-start)
		}
		hs = at + 1
	}

	he := end
	if c := portColon(src[hs:end]); c >= 0 {
		he = hs + c
		if ps := he + 1; end > ps {
			tbl.set(Port, ps, end-ps)
		}
	}
	if he > hs {
		tbl.set(Host, hs, he-hs)
	}

	switch {
	case end < tail:
		tbl.set(Path, end, tail-end)
	case tbl.Mask.Test(Scheme):
		tbl.set(Path, end, 0)
	}
	return true
}

// portColon returns the index of the colon that separates host and port, or -1.
// Colons inside an IP literal are skipped.
func portColon(hostport string) int {
	if strings.HasPrefix(hostport, "[") {
		rb := strings.LastIndexByte(hostport, ']')
		if rb < 0 {
			return -1
		}
		if c := strings.IndexByte(hostport[rb:], ':'); c >= 0 {
			return rb + c
		}
		return -1
	}
	return strings.IndexByte(hostport, ':')
}

// precheck rejects sources the scanner must not look at.
// Plain spaces are allowed after a '?' that precedes every illegal char.
func precheck(src string) ErrorCode {
	switch {
	case len(src) == 0:
		return EmptySource
	case len(src) > MaxLen:
		return TooLong
	}

	i := grammar.IndexIllegal(src)
	if i < 0 {
		return NoError
	}
	if strings.IndexByte(src[:i], '?') < 0 {
		return IllegalChars
	}
	for ; i < len(src); i++ {
		if src[i] != ' ' && grammar.IsIllegalChar(src[i]) {
			return IllegalChars
		}
	}
	return NoError
}

func indexFrom(s string, from int, c byte) int {
	if from >= len(s) {
		return -1
	}
	if i := strings.IndexByte(s[from:], c); i >= 0 {
		return from + i
	}
	return -1
}
