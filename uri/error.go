package uri

import "github.com/ghettovoice/gouri/internal/grammar"

// ErrorCode tells why a source was rejected by the parser.
type ErrorCode uint8

const (
	NoError ErrorCode = iota
	TooLong
	IllegalChars
	EmptySource
)

var codeNames = [...]string{
	NoError:      "no error",
	TooLong:      "too long",
	IllegalChars: "illegal chars",
	EmptySource:  "empty source",
}

func (c ErrorCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "unknown error"
}

// Err returns the sentinel error for the code, or nil for [NoError].
func (c ErrorCode) Err() error {
	switch c {
	case NoError:
		return nil
	case TooLong:
		return ErrTooLong //errtrace:skip
	case IllegalChars:
		return ErrIllegalChars //errtrace:skip
	case EmptySource:
		return ErrEmptySource //errtrace:skip
	}
	return grammar.Error(c.String()) //errtrace:skip
}

const (
	ErrEmptySource  = grammar.ErrEmptyInput
	ErrTooLong      = grammar.ErrTooLong
	ErrIllegalChars = grammar.ErrIllegalChars
	// ErrStorageExceed is reported by a [Storage] that cannot hold a source.
	ErrStorageExceed = grammar.ErrStorageExceed
)
