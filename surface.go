package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the raster backend's frame buffer: a single offscreen pixel
// buffer everything is composited into. It wraps an *ebiten.Image so frames
// can be drawn straight to the screen or post-processed.
type Surface struct {
	img *ebiten.Image
}

// NewSurface creates a transparent surface of the given pixel size.
func NewSurface(width, height int) *Surface {
	if width <= 0 || height <= 0 {
		panic("rowan: surface size must be positive")
	}
	return &Surface{img: ebiten.NewImage(width, height)}
}

// Image returns the backing image. Drawing to it directly bypasses the
// compositor; prefer the compositor's submit primitives during a frame.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// Size returns the pixel dimensions.
func (s *Surface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear resets the surface to fully transparent.
func (s *Surface) Clear() {
	s.img.Clear()
}

// Blit draws src onto the surface with the given placement matrix.
func (s *Surface) Blit(src *ebiten.Image, placement [6]float64) {
	s.blit(src, placement, 1.0)
}

// blit draws src with a placement matrix and an alpha multiplier.
func (s *Surface) blit(src *ebiten.Image, placement [6]float64, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoMFromAffine(placement)
	if alpha != 1.0 {
		op.ColorScale.ScaleAlpha(float32(alpha))
	}
	s.img.DrawImage(src, op)
}

// ReadPixels copies the surface contents into a new premultiplied RGBA byte
// slice (4 bytes per pixel, row-major).
func (s *Surface) ReadPixels() []byte {
	w, h := s.Size()
	pixels := make([]byte, 4*w*h)
	s.img.ReadPixels(pixels)
	return pixels
}

// Clone returns an independent copy of the surface's current contents.
func (s *Surface) Clone() *Surface {
	w, h := s.Size()
	dst := NewSurface(w, h)
	dst.img.DrawImage(s.img, nil)
	return dst
}

// Deallocate releases the backing image's GPU resources. The surface must not
// be used afterwards.
func (s *Surface) Deallocate() {
	s.img.Deallocate()
	s.img = nil
}

// geoMFromAffine converts a [6]float64 affine matrix ([a, b, c, d, tx, ty],
// column-major 2x2 plus translation) to an ebiten.GeoM.
func geoMFromAffine(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
