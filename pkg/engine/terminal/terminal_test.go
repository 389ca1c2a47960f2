package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSizeOf_NotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w, h := SizeOf(f)
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("SizeOf(file) = %dx%d, want %dx%d", w, h, DefaultWidth, DefaultHeight)
	}
	if IsTerminal(f) {
		t.Errorf("IsTerminal(file) = true")
	}
}
