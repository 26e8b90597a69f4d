package module

import (
	"sync"
	"testing"
)

// simple type used in tests
type portSet struct {
	Name string
	ID   int
}

func TestRegistry_RegisterAndPortsAs_Success(t *testing.T) {
	Reset()

	want := portSet{Name: "sizeguard", ID: 1}
	Register("sizeguard", want)

	got, ok := PortsAs[portSet]("sizeguard")
	if !ok {
		t.Fatal("expected ok for existing name")
	}
	if got != want {
		t.Fatalf("unexpected value got=%v want=%v", got, want)
	}
}

func TestRegistry_PortsAs_MissingReturnsZeroAndFalse(t *testing.T) {
	Reset()

	got, ok := PortsAs[portSet]("missing")
	if ok {
		t.Fatal("expected ok=false for missing name")
	}
	if got != (portSet{}) {
		t.Fatalf("expected zero value got=%v", got)
	}
}

func TestRegistry_PortsAs_TypeMismatchReturnsFalse(t *testing.T) {
	Reset()

	Register("split", "not-a-portset")
	if _, ok := PortsAs[portSet]("split"); ok {
		t.Fatal("expected ok=false for type mismatch")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	Reset()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Register("sizeguard", portSet{Name: "sizeguard", ID: n})
			_, _ = PortsAs[portSet]("sizeguard")
		}(i)
	}
	wg.Wait()

	if _, ok := PortsAs[portSet]("sizeguard"); !ok {
		t.Fatal("expected value after concurrent writes")
	}
}
