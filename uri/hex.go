package uri

import "github.com/ghettovoice/gouri/internal/grammar"

// HasHex reports whether s contains a "%XX" escape.
func HasHex[T ~string | ~[]byte](s T) bool { return grammar.FindEscape(s) >= 0 }

// FindHex returns the index of the first "%XX" escape in s, or -1.
func FindHex[T ~string | ~[]byte](s T) int { return grammar.FindEscape(s) }

// DecodeHex replaces every "%XX" escape in s with the byte it encodes.
// Decoding is a single pass: a '%' produced by decoding is not decoded again,
// so "%2541" decodes to "%41".
func DecodeHex[T ~string | ~[]byte](s T) T { return grammar.Unescape(s) }

// EncodeHex escapes every byte of s except RFC 3986 unreserved chars.
// Existing escapes are kept.
func EncodeHex[T ~string | ~[]byte](s T) T { return grammar.Escape(s, nil) }
