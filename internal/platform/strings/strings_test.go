package strings

import (
	"testing"

	kit "maidata/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []string{".md", ".txt"}
	if got := IfEmpty(nil, def); len(got) != 2 {
		t.Fatalf("IfEmpty(nil) = %v, want default", got)
	}
	in := []string{".bin"}
	if got := IfEmpty(in, def); len(got) != 1 || got[0] != ".bin" {
		t.Fatalf("IfEmpty(in) = %v, want in", got)
	}
}

func TestHasAnySuffix(t *testing.T) {
	sufs := []string{".md", ".txt"}
	cases := []struct {
		s    string
		want bool
	}{
		{"README.md", true},
		{"notes.txt", true},
		{"model.bin", false},
		{"", false},
	}
	for _, c := range cases {
		if got := HasAnySuffix(c.s, sufs); got != c.want {
			t.Fatalf("HasAnySuffix(%q) = %v, want %v", c.s, got, c.want)
		}
	}
	if HasAnySuffix("file", []string{""}) {
		t.Fatalf("empty suffix must not match")
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("x", "name"); got != "x" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { MustString("   ", "name") })
}

func TestPtrDeref(t *testing.T) {
	if Ptr("") != nil {
		t.Fatalf("Ptr(\"\") should be nil")
	}
	p := Ptr("a")
	if Deref(p) != "a" {
		t.Fatalf("Deref = %q", Deref(p))
	}
	if Deref(nil) != "" {
		t.Fatalf("Deref(nil) should be empty")
	}
	if EmptyToNil("  ") != "" || EmptyToNil("x") != "x" {
		t.Fatalf("EmptyToNil misbehaved")
	}
}
