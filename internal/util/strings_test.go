package util_test

import (
	"testing"

	"github.com/ghettovoice/gouri/internal/util"
)

func TestStringBuilderPool(t *testing.T) {
	t.Parallel()

	sb := util.GetStringBuilder()
	sb.WriteString("https://")
	sb.WriteString("example.com")
	got := sb.String()
	util.FreeStringBuilder(sb)

	if want := "https://example.com"; got != want {
		t.Errorf("built string = %q, want %q", got, want)
	}

	sb = util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if sb.Len() != 0 {
		t.Errorf("pooled builder length = %d, want 0", sb.Len())
	}
}

func TestLCase(t *testing.T) {
	t.Parallel()

	if got, want := util.LCase("HTTPS://WWW.Hello.COM"), "https://www.hello.com"; got != want {
		t.Errorf("util.LCase() = %q, want %q", got, want)
	}
}

func TestEqFold(t *testing.T) {
	t.Parallel()

	if !util.EqFold("Scheme", "scheme") {
		t.Error("util.EqFold(\"Scheme\", \"scheme\") = false, want true")
	}
	if util.EqFold("host", "port") {
		t.Error("util.EqFold(\"host\", \"port\") = true, want false")
	}
}
