package log_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"github.com/ghettovoice/gouri/internal/log"
	"github.com/ghettovoice/gouri/uri"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(log.Wrap(slog.NewJSONHandler(&buf, nil)))
	logger.Info("decoded",
		"query", uri.DecodeQuery("a=1&b&a=2", nil),
		"error", errors.New("boom"),
	)

	out := buf.String()
	for _, want := range []string{
		`"query":{"a":"1","b":"","a":"2"}`,
		`"message":"boom"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output = %s, want it to contain %s", out, want)
		}
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		dev   bool
		level slog.Level
	}{
		{"console", false, slog.LevelInfo},
		{"dev", true, slog.LevelDebug},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := log.New(&buf, c.dev, c.level)
			logger.Info("parsed", "host", "www.blah.com")
			if !strings.Contains(buf.String(), "www.blah.com") {
				t.Errorf("log output = %q, want it to contain %q", buf.String(), "www.blah.com")
			}

			buf.Reset()
			logger.Debug("hidden")
			if c.level > slog.LevelDebug && buf.Len() != 0 {
				t.Errorf("debug record written at level %v: %q", c.level, buf.String())
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		logger *slog.Logger
		level  slog.Level
		want   bool
	}{
		{"def info", log.Def, slog.LevelInfo, true},
		{"def debug", log.Def, slog.LevelDebug, false},
		{"dev debug", log.Dev, slog.LevelDebug, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.logger.Enabled(t.Context(), c.level); got != c.want {
				t.Errorf("logger.Enabled(ctx, %v) = %v, want %v", c.level, got, c.want)
			}
		})
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(t.Context(), slog.LevelError) {
		t.Error("log.Noop.Enabled(ctx, error) = true, want false")
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	v := uri.NewView("https://www.blah.com/")
	cases := []struct {
		name string
		val  slog.LogValuer
		want string
	}{
		{"fmt", log.FmtValue(v, false), `scheme="https" authority="www.blah.com" host="www.blah.com" path="/"`},
		{"string", log.StringValue([]byte("https://www.blah.com/")), "https://www.blah.com/"},
		{"calc", log.CalcValue(func() any { return v.Count() }), "4"},
		{"calc value", log.CalcValue(func() any { return slog.StringValue("x") }), "x"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.val.LogValue().String(); got != c.want {
				t.Errorf("val.LogValue() = %q, want %q", got, c.want)
			}
		})
	}
}
