package testkit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustPanicAndNotPanic(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	MustContain(t, "the quick brown fox", "quick")
}

func TestWriteFileAndTree(t *testing.T) {
	root := t.TempDir()
	WriteTree(t, root, map[string]int{
		"small.txt":       1024,
		"nested/file.bin": 2048,
	})

	fi, err := os.Stat(filepath.Join(root, "small.txt"))
	if err != nil || fi.Size() != 1024 {
		t.Fatalf("small.txt stat = %v size %d", err, fi.Size())
	}
	fi, err = os.Stat(filepath.Join(root, "nested", "file.bin"))
	if err != nil || fi.Size() != 2048 {
		t.Fatalf("nested/file.bin stat = %v", err)
	}
}
