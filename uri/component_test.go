package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gouri/uri"
)

func TestComponent_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		comp uri.Component
		want string
	}{
		{uri.Scheme, "scheme"},
		{uri.Authority, "authority"},
		{uri.Userinfo, "userinfo"},
		{uri.User, "user"},
		{uri.Password, "password"},
		{uri.Host, "host"},
		{uri.Port, "port"},
		{uri.Path, "path"},
		{uri.Query, "query"},
		{uri.Fragment, "fragment"},
		{uri.CountOf, ""},
		{uri.CountOf + 5, ""},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			t.Parallel()

			if got := c.comp.String(); got != c.want {
				t.Errorf("Component(%d).String() = %q, want %q", c.comp, got, c.want)
			}
		})
	}
}

func TestComponentOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		want   uri.Component
		wantOk bool
	}{
		{"host", uri.Host, true},
		{"FRAGMENT", uri.Fragment, true},
		{"UserInfo", uri.Userinfo, true},
		{"countof", uri.CountOf, false},
		{"", uri.CountOf, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, ok := uri.ComponentOf(c.name)
			if got != c.want || ok != c.wantOk {
				t.Errorf("uri.ComponentOf(%q) = (%v, %v), want (%v, %v)", c.name, got, ok, c.want, c.wantOk)
			}
		})
	}
}

func TestPresence(t *testing.T) {
	t.Parallel()

	var p uri.Presence
	if p.Test(uri.CountOf) {
		t.Fatal("zero presence tests any = true, want false")
	}

	p.Set(uri.Scheme)
	p.Set(uri.Path)
	if got, want := p.String(), "0010000001"; got != want {
		t.Errorf("p.String() = %q, want %q", got, want)
	}
	if got := p.Count(); got != 2 {
		t.Errorf("p.Count() = %d, want 2", got)
	}
	if p.AnyAuthority() {
		t.Error("p.AnyAuthority() = true, want false")
	}

	p.Set(uri.Port)
	if !p.AnyAuthority() {
		t.Error("p.AnyAuthority() = false, want true")
	}
	p.Clear(uri.Scheme)
	if p.Test(uri.Scheme) || !p.Test(uri.Port) {
		t.Errorf("p = %s, want port set and scheme cleared", p)
	}

	p.Set(uri.CountOf)
	if got := p.Count(); got != int(uri.CountOf) {
		t.Errorf("p.Count() after Set(CountOf) = %d, want %d", got, uri.CountOf)
	}
	p.Clear(uri.CountOf)
	if p != 0 {
		t.Errorf("p after Clear(CountOf) = %s, want zero", p)
	}

	p.Set(uri.CountOf + 1)
	if p != 0 {
		t.Errorf("p after Set(out of range) = %s, want zero", p)
	}
}

func TestErrorCode_Err(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code    uri.ErrorCode
		wantStr string
		wantErr error
	}{
		{uri.NoError, "no error", nil},
		{uri.TooLong, "too long", uri.ErrTooLong},
		{uri.IllegalChars, "illegal chars", uri.ErrIllegalChars},
		{uri.EmptySource, "empty source", uri.ErrEmptySource},
	}

	for _, c := range cases {
		t.Run(c.wantStr, func(t *testing.T) {
			t.Parallel()

			if got := c.code.String(); got != c.wantStr {
				t.Errorf("code.String() = %q, want %q", got, c.wantStr)
			}
			err := c.code.Err()
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("code.Err() = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
		})
	}
}
