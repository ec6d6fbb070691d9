package rowan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	cases := []struct{ in, want string }{
		{"frame-1", "frame-1"},
		{"hello world!", "hello_world_"},
		{"  ", "unlabeled"},
		{"", "unlabeled"},
		{"a/b\\c", "a_b_c"},
	}
	for _, c := range cases {
		if got := sanitizeLabel(c.in); got != c.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWritePNGBadPath(t *testing.T) {
	s := NewSurface(4, 4)
	if err := s.WritePNG(filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestWriteSnapshotBadDir(t *testing.T) {
	// A file where the snapshot directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	c := NewCompositor(BackendRaster, 8, 8)
	c.RenderFrame(nil)
	if _, err := c.WriteSnapshot(blocker, "frame"); err == nil {
		t.Error("expected error for an unusable snapshot directory")
	}
}
