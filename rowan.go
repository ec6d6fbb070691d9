package rowan

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA premultiplies and converts to an 8-bit color for image fills.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the
// API.
type Vec2 struct {
	X, Y float64
}

// WhitePixel is a 1x1 white image used for solid color sprites.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// BackendKind selects which accumulation backend a Compositor composites
// into.
type BackendKind uint8

const (
	// BackendRetained accumulates each frame into a tree of Visual nodes.
	BackendRetained BackendKind = iota
	// BackendRaster accumulates each frame into a single raster Surface.
	BackendRaster
)

// String returns the backend's name.
func (b BackendKind) String() string {
	switch b {
	case BackendRetained:
		return "retained"
	case BackendRaster:
		return "raster"
	default:
		return "unknown"
	}
}
