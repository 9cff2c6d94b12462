package util_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/httphdr/internal/util"
)

func TestEllipsis(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"", 3, ""},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc..."},
		{"ёжик", 2, "ёж..."},
		{"ёж", 2, "ёж"},
	}
	for _, c := range cases {
		if got := util.Ellipsis(c.in, c.max); got != c.want {
			t.Errorf("util.Ellipsis(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
	}
}

func TestTrimSP(t *testing.T) {
	t.Parallel()

	if got, want := util.TrimSP(" \tHost \r"), "Host"; got != want {
		t.Errorf("util.TrimSP() = %q, want %q", got, want)
	}
}

func TestMust2(t *testing.T) {
	t.Parallel()

	if got := util.Must2(42, nil); got != 42 {
		t.Errorf("util.Must2(42, nil) = %v, want 42", got)
	}

	errBoom := errors.New("boom")
	defer func() {
		if r := recover(); r != errBoom { //nolint:errorlint
			t.Errorf("util.Must2() panicked with %v, want %v", r, errBoom)
		}
	}()
	util.Must2(0, errBoom)
}

func TestStringBuilderPool(t *testing.T) {
	t.Parallel()

	sb := util.GetStringBuilder()
	sb.WriteString("abc")
	util.FreeStringBuilder(sb)

	sb = util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if sb.Len() != 0 {
		t.Errorf("pooled builder Len() = %d, want 0", sb.Len())
	}
}
