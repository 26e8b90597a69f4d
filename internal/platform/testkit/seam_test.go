package testkit

import "testing"

var seamFn = func() string { return "real" }

func TestSwapRestores(t *testing.T) {
	Serial(t)

	t.Run("swapped", func(t *testing.T) {
		Swap(t, &seamFn, func() string { return "fake" })
		if seamFn() != "fake" {
			t.Fatalf("seam not swapped")
		}
	})

	if seamFn() != "real" {
		t.Fatalf("seam not restored after subtest")
	}
}
