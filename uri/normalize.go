package uri

import (
	"strings"

	"github.com/ghettovoice/gouri/internal/util"
)

// RemoveDotSegments removes "." and ".." segments from path as described in RFC 3986 Section 5.2.4.
func RemoveDotSegments(path string) string {
	if !strings.Contains(path, ".") {
		return path
	}

	in := path
	out := make([]byte, 0, len(path))
	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = in[2:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = in[3:]
			out = dropLastSegment(out)
		case in == "/..":
			in = "/"
			out = dropLastSegment(out)
		case in == "." || in == "..":
			in = ""
		default:
			start := 0
			if in[0] == '/' {
				start = 1
			}
			end := len(in)
			if i := strings.IndexByte(in[start:], '/'); i >= 0 {
				end = start + i
			}
			out = append(out, in[:end]...)
			in = in[end:]
		}
	}
	return string(out)
}

func dropLastSegment(b []byte) []byte {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == '/' {
			return b[:i]
		}
	}
	return b[:0]
}

var defaultPorts = map[string]string{
	"http":  "80",
	"ws":    "80",
	"https": "443",
	"wss":   "443",
}

// NormalizeHTTP normalizes an HTTP-like URI: escapes are decoded, scheme and
// host are lowercased, dot segments are removed, the default port of http,
// https, ws and wss is dropped and an empty path becomes "/".
// A source that does not parse is returned unchanged.
func NormalizeHTTP(src string) string {
	u := Parse(src, nil)
	if !u.IsValid() {
		return src
	}

	parts := make([]Part, 0, 4)
	scheme := util.LCase(u.Component(Scheme))
	if u.Test(Scheme) {
		parts = append(parts, Part{Scheme, scheme})
	}
	if u.Test(Host) {
		parts = append(parts, Part{Host, util.LCase(u.Component(Host))})
	}
	if u.Test(Port) && defaultPorts[scheme] == u.Component(Port) {
		parts = append(parts, Part{Port, ""})
	}
	if path := RemoveDotSegments(u.Component(Path)); path != "" || u.Test(Authority) {
		if path == "" {
			path = "/"
		}
		parts = append(parts, Part{Path, path})
	}
	u.Edit(parts...)
	return u.Source()
}
