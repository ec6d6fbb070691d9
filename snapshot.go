package rowan

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"
)

// ToImage copies the surface into a straight-alpha image.NRGBA, converting
// from ebiten's premultiplied storage. Useful for post-processing a snapshot
// on the CPU.
func (s *Surface) ToImage() *image.NRGBA {
	w, h := s.Size()
	pixels := s.ReadPixels()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// WritePNG encodes the surface to a PNG file at the given path.
func (s *Surface) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, s.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// WriteSnapshot takes a snapshot of the current composited frame and writes
// it to dir with a timestamped, label-derived filename. The directory is
// created if needed. Returns the written path.
func (c *Compositor) WriteSnapshot(dir, label string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := fmt.Sprintf("%s/%s_%s.png", dir, stamp, sanitizeLabel(label))
	if err := c.Snapshot().WritePNG(path); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	return path, nil
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
