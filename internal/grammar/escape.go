package grammar

// FindEscape returns the index of the first "% HEXDIG HEXDIG" sequence in s, or -1.
func FindEscape[T ~string | ~[]byte](s T) int {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == '%' && IsHexDigit(s[i+1]) && IsHexDigit(s[i+2]) {
			return i
		}
	}
	return -1
}

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG"
// into the hex-decoded byte. The input is scanned once: bytes produced by decoding are never decoded again.
func Unescape[T ~string | ~[]byte](s T) T {
	i := FindEscape(s)
	if i < 0 {
		return s
	}

	b := make([]byte, 0, len(s))
	b = append(b, s[:i]...)
	for ; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && IsHexDigit(s[i+1]) && IsHexDigit(s[i+2]) {
			b = append(b, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		} else {
			b = append(b, s[i])
		}
	}
	return T(b)
}

// Escape escapes s by replacing each char matched by shouldEscape callback to the hex form "% HEXDIG HEXDIG".
// Already escaped sequences are kept as is. Nil callback escapes everything except unreserved chars.
func Escape[T ~string | ~[]byte](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsCharUnreserved(c) }
	}

	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && IsHexDigit(s[i+1]) && IsHexDigit(s[i+2]):
			b = append(b, s[i], s[i+1], s[i+2])
			i += 2
		case shouldEscape(s[i]):
			b = append(b, '%', upperhex[s[i]>>4], upperhex[s[i]&15])
		default:
			b = append(b, s[i])
		}
	}
	return T(b)
}

const upperhex = "0123456789ABCDEF"

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
