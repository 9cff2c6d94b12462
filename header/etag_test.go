package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphdr/header"
)

func TestParseEtag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    header.Etag
		wantErr error
	}{
		{"empty", "", header.Etag{}, header.Error{Expected: `"`}},
		{"strong", `"strong etag"`, header.StrongEtag("strong etag"), nil},
		{"weak", `W/"weak etag"`, header.WeakEtag("weak etag"), nil},
		{"empty strong", `""`, header.StrongEtag(""), nil},
		{"empty weak", `W/""`, header.WeakEtag(""), nil},
		{"invalid", "invalid", header.Etag{}, header.Error{Expected: `"`}},
		{"prefix only", "W/", header.Etag{}, header.Error{Expected: `"`}},
		{"lower case weak", `w/"x"`, header.Etag{}, header.Error{Expected: `"`}},
		{"single quote", `"`, header.Etag{}, header.Error{Expected: `"`}},
		{"unclosed", `W/"x`, header.Etag{}, header.Error{Expected: `"`}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseEtag(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("header.ParseEtag(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("header.ParseEtag(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}

func TestEtag_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"", "x", "33a64df551425fcc55e4d42a148795d9f25f89d4", "0815", "with space"} {
		for _, etag := range []header.Etag{header.StrongEtag(tag), header.WeakEtag(tag)} {
			got, err := header.ParseEtag(etag.String())
			if err != nil {
				t.Fatalf("header.ParseEtag(%q) error = %v, want nil", etag.String(), err)
			}
			if got != etag {
				t.Errorf("header.ParseEtag(%q) = %+v, want %+v", etag.String(), got, etag)
			}
		}
	}
}

func TestEtag_Comparable(t *testing.T) {
	t.Parallel()

	if header.WeakEtag("x") == header.StrongEtag("x") {
		t.Errorf("WeakEtag(\"x\") == StrongEtag(\"x\"), want different")
	}

	stored := map[header.Etag]string{header.StrongEtag("v1"): "body"}
	etag, err := header.ParseEtag(`"v1"`)
	if err != nil {
		t.Fatalf("header.ParseEtag(\"v1\") error = %v, want nil", err)
	}
	if _, ok := stored[etag]; !ok {
		t.Errorf("stored[%v] not found, want found", etag)
	}
}

func TestEtag_UnmarshalText(t *testing.T) {
	t.Parallel()

	var etag header.Etag
	if err := etag.UnmarshalText([]byte(`W/"abc"`)); err != nil {
		t.Fatalf("etag.UnmarshalText() error = %v, want nil", err)
	}
	if want := header.WeakEtag("abc"); etag != want {
		t.Errorf("etag = %+v, want %+v", etag, want)
	}

	if err := etag.UnmarshalText([]byte("abc")); err == nil {
		t.Errorf("etag.UnmarshalText(\"abc\") error = nil, want error")
	}
}

func TestParseIfMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    header.IfMatch
		wantErr error
	}{
		{"any", "*", header.IfMatch{Any: true}, nil},
		{"empty", "", header.IfMatch{}, header.Error{Expected: `"`}},
		{"double star", "**", header.IfMatch{}, header.Error{Expected: `"`}},
		{"single", `"xyzzy"`, header.IfMatch{Etags: []header.Etag{header.StrongEtag("xyzzy")}}, nil},
		{
			"list",
			`"xyzzy", "r2d2xxxx", W/"c3piozzzz"`,
			header.IfMatch{Etags: []header.Etag{
				header.StrongEtag("xyzzy"),
				header.StrongEtag("r2d2xxxx"),
				header.WeakEtag("c3piozzzz"),
			}},
			nil,
		},
		{
			"no space",
			`"a",W/"b"`,
			header.IfMatch{Etags: []header.Etag{header.StrongEtag("a"), header.WeakEtag("b")}},
			nil,
		},
		{
			"duplicates kept",
			`"a", "a"`,
			header.IfMatch{Etags: []header.Etag{header.StrongEtag("a"), header.StrongEtag("a")}},
			nil,
		},
		{"two spaces", `"a",  "b"`, header.IfMatch{}, header.Error{Expected: `"`}},
		{"bad element", `"a", b, "c"`, header.IfMatch{}, header.Error{Expected: `"`}},
		{"trailing comma", `"a",`, header.IfMatch{}, header.Error{Expected: `"`}},
		{"star in list", `"a", *`, header.IfMatch{}, header.Error{Expected: `"`}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseIfMatch(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("header.ParseIfMatch(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("header.ParseIfMatch(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}

func TestParseIfNoneMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    header.IfNoneMatch
		wantErr error
	}{
		{"any", "*", header.IfNoneMatch{Any: true}, nil},
		{"empty", "", header.IfNoneMatch{}, header.Error{Expected: `"`}},
		{
			"list",
			`W/"67ab43", "54ed21", "7892dd"`,
			header.IfNoneMatch{Etags: []header.Etag{
				header.WeakEtag("67ab43"),
				header.StrongEtag("54ed21"),
				header.StrongEtag("7892dd"),
			}},
			nil,
		},
		{"bad element", `"a", W/b`, header.IfNoneMatch{}, header.Error{Expected: `"`}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseIfNoneMatch(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("header.ParseIfNoneMatch(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("header.ParseIfNoneMatch(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}

func TestIfNoneMatch_Matches(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.IfNoneMatch
		etag header.Etag
		want bool
	}{
		{"any", header.IfNoneMatch{Any: true}, header.StrongEtag("x"), true},
		{"empty", header.IfNoneMatch{}, header.StrongEtag("x"), false},
		{"hit", header.IfNoneMatch{Etags: []header.Etag{header.StrongEtag("a"), header.StrongEtag("x")}}, header.StrongEtag("x"), true},
		{"weakness differs", header.IfNoneMatch{Etags: []header.Etag{header.WeakEtag("x")}}, header.StrongEtag("x"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Matches(c.etag); got != c.want {
				t.Errorf("hdr.Matches(%v) = %v, want %v", c.etag, got, c.want)
			}
			if got := header.IfMatch(c.hdr).Matches(c.etag); got != c.want {
				t.Errorf("IfMatch(hdr).Matches(%v) = %v, want %v", c.etag, got, c.want)
			}
		})
	}
}

func TestIfMatch_Equal(t *testing.T) {
	t.Parallel()

	hdr := header.IfMatch{Etags: []header.Etag{header.StrongEtag("a")}}
	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"nil", nil, false},
		{"nil ptr", (*header.IfMatch)(nil), false},
		{"other type", header.IfNoneMatch(hdr), false},
		{"equal", header.IfMatch{Etags: []header.Etag{header.StrongEtag("a")}}, true},
		{"equal ptr", &header.IfMatch{Etags: []header.Etag{header.StrongEtag("a")}}, true},
		{"any", header.IfMatch{Any: true}, false},
		{"weak", header.IfMatch{Etags: []header.Etag{header.WeakEtag("a")}}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := hdr.Equal(c.val); got != c.want {
				t.Errorf("hdr.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}
