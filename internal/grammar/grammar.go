// Package grammar contains the character classes and percent-encoding
// primitives the URI scanner is built on.
package grammar

// Error is a grammar error. It reports the input text itself is unacceptable.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput    Error = "empty input"
	ErrTooLong       Error = "input too long"
	ErrIllegalChars  Error = "illegal characters in input"
	ErrStorageExceed Error = "input exceeds storage capacity"
)

// IsHexDigit checks HEXDIG rule.
func IsHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

// IsAlphanumChar checks ALPHA / DIGIT rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsCharUnreserved checks RFC 3986 unreserved rule.
func IsCharUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return IsAlphanumChar(c)
}

// IsIllegalChar reports whether c is a raw ASCII control character or space.
// Bytes of multibyte UTF-8 sequences are legal.
func IsIllegalChar(c byte) bool { return c <= ' ' || c == 0x7f }

// IndexIllegal returns the index of the first illegal char in s, or -1.
func IndexIllegal[T ~string | ~[]byte](s T) int {
	for i := 0; i < len(s); i++ {
		if IsIllegalChar(s[i]) {
			return i
		}
	}
	return -1
}
