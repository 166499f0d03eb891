package ioutil_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ghettovoice/gouri/internal/ioutil"
)

var errWrite = errors.New("write failed")

type limitWriter struct {
	sb    strings.Builder
	limit int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if room := w.limit - w.sb.Len(); len(p) > room {
		w.sb.Write(p[:max(room, 0)])
		return max(room, 0), errWrite
	}
	return w.sb.Write(p)
}

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.NewCountingWriter(&sb)
	cw.WriteString("scheme")  //nolint:errcheck
	cw.Fprint("  ", "https")  //nolint:errcheck
	cw.Fprintf("\n%d\n", 443) //nolint:errcheck
	cw.Write([]byte("end"))   //nolint:errcheck

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if want := "scheme  https\n443\nend"; sb.String() != want {
		t.Errorf("written = %q, want %q", sb.String(), want)
	}
	if num != sb.Len() || cw.Count() != sb.Len() {
		t.Errorf("cw.Result() num = %d, cw.Count() = %d, want %d", num, cw.Count(), sb.Len())
	}
}

func TestCountingWriter_Call(t *testing.T) {
	t.Parallel()

	render := func(s string) func(io.Writer) (int, error) {
		return func(w io.Writer) (int, error) { return io.WriteString(w, s) }
	}

	var sb strings.Builder
	num, err := ioutil.NewCountingWriter(&sb).Call(render("host")).Call(render(":80")).Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if num != 7 || sb.String() != "host:80" {
		t.Errorf("cw.Result() = (%d, %q), want (7, \"host:80\")", num, sb.String())
	}
}

func TestCountingWriter_StopsAfterError(t *testing.T) {
	t.Parallel()

	w := &limitWriter{limit: 5}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if _, err := cw.WriteString("abc"); err != nil {
		t.Fatalf("cw.WriteString() error = %v, want nil", err)
	}
	if _, err := cw.WriteString("defg"); !errors.Is(err, errWrite) {
		t.Fatalf("cw.WriteString() error = %v, want %v", err, errWrite)
	}
	if n, err := cw.Fprint("more"); n != 0 || !errors.Is(err, errWrite) {
		t.Errorf("cw.Fprint() = (%d, %v), want (0, %v)", n, err, errWrite)
	}

	num, err := cw.Result()
	if num != 5 || !errors.Is(err, errWrite) {
		t.Errorf("cw.Result() = (%d, %v), want (5, %v)", num, err, errWrite)
	}
	if w.sb.String() != "abcde" {
		t.Errorf("written = %q, want %q", w.sb.String(), "abcde")
	}
}
