package github

import "testing"

func TestAPIDiffPath(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{
			in:     "https://github.com/golang/go/pull/123.diff",
			want:   "/repos/golang/go/pulls/123",
			wantOK: true,
		},
		{
			in:     "https://github.com/o/r/pull/9.diff",
			want:   "/repos/o/r/pulls/9",
			wantOK: true,
		},
		// not a diff link: returned unchanged
		{in: "https://github.com/golang/go/pull/123", want: "https://github.com/golang/go/pull/123", wantOK: false},
		{in: "https://github.com/golang/go", want: "https://github.com/golang/go", wantOK: false},
		{in: "https://example.com/a/b/c/d.diff", want: "https://example.com/a/b/c/d.diff", wantOK: false},
		{in: "", want: "", wantOK: false},
	}
	for _, c := range cases {
		got, ok := APIDiffPath(c.in)
		if got != c.want || ok != c.wantOK {
			t.Fatalf("APIDiffPath(%q) = %q,%v want %q,%v", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestHostOf(t *testing.T) {
	if h := hostOf("https://api.github.com/repos/o/r/pulls/1"); h != "api.github.com" {
		t.Fatalf("hostOf = %q", h)
	}
	if h := hostOf("://bad"); h != "" {
		t.Fatalf("hostOf bad = %q", h)
	}
}
