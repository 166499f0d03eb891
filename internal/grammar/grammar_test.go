package grammar_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
)

func TestIndexIllegal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want int
	}{
		{"empty", "", -1},
		{"clean", "https://www.example.com/", -1},
		{"utf-8", "http://\xe4\xbd\xa0\xe5\xa5\xbd.\xe5\x9c\xa8", -1},
		{"space", "https://www. example.com", 12},
		{"tab", "https://www.example\tcom", 19},
		{"newline", "https://www.example.com\n", 23},
		{"carriage return", "https://www.example.com\r", 23},
		{"delete", "a\x7fb", 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IndexIllegal(c.str); got != c.want {
				t.Errorf("grammar.IndexIllegal(%q) = %d, want %d", c.str, got, c.want)
			}
		})
	}
}

func TestIsCharUnreserved(t *testing.T) {
	t.Parallel()

	for _, c := range []byte("azAZ09-._~") {
		if !grammar.IsCharUnreserved(c) {
			t.Errorf("grammar.IsCharUnreserved(%q) = false, want true", c)
		}
	}
	for _, c := range []byte("!*'();:@&=+$,/?#[]% ") {
		if grammar.IsCharUnreserved(c) {
			t.Errorf("grammar.IsCharUnreserved(%q) = true, want false", c)
		}
	}
}

func TestError_Grammar(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		grammar.ErrEmptyInput,
		grammar.ErrTooLong,
		grammar.ErrIllegalChars,
		grammar.ErrStorageExceed,
	} {
		if !errorutil.IsGrammarErr(err) {
			t.Errorf("errorutil.IsGrammarErr(%q) = false, want true", err)
		}
	}
	if errorutil.IsGrammarErr(errors.New("other")) {
		t.Error("errorutil.IsGrammarErr(other) = true, want false")
	}
}
