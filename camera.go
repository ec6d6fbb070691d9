package rowan

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view into the world: position, zoom, rotation, and
// viewport. The compositor applies the camera's view matrix after the
// projection when mapping world positions to screen pixels.
type Camera struct {
	// X and Y are the projected-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	followTarget  *Visual
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the projected-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a Camera with default values and the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// Follow makes the camera track a visual with the given offset and lerp
// factor. A lerp of 1.0 snaps immediately; lower values give smoother
// following.
func (c *Camera) Follow(v *Visual, offsetX, offsetY, lerp float64) {
	c.followTarget = v
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
}

// Unfollow stops tracking the current target visual.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances follow, scroll, and bounds clamping. Call once per frame
// with the frame delta in seconds.
func (c *Camera) Update(dt float32) {
	prevX, prevY := c.X, c.Y
	prevZoom, prevRot := c.Zoom, c.Rotation

	// Track the follow target toward its most recent world position.
	if c.followTarget != nil {
		targetX := c.followTarget.worldTransform[4] + c.followOffsetX
		targetY := c.followTarget.worldTransform[5] + c.followOffsetY
		c.X += (targetX - c.X) * c.followLerp
		c.Y += (targetY - c.Y) * c.followLerp
	}

	// Advance an active scroll tween on each axis independently.
	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}

	if c.X != prevX || c.Y != prevY || c.Zoom != prevZoom || c.Rotation != prevRot {
		c.dirty = true
	}
}

// clampToBounds pulls the camera back so no part of the visible area leaves
// Bounds, accounting for zoom.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// Bounds narrower than the view leave no valid position; pin to center.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// computeViewMatrix rebuilds the cached view matrix and its inverse when the
// camera state has changed. The view places (X, Y) at the viewport center,
// scaled by Zoom and rotated by -Rotation:
//
//	viewMatrix = Translate(center) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	cos := math.Cos(-c.Rotation)
	sin := math.Sin(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// Apply converts a projected-space point to screen coordinates.
func (c *Camera) Apply(p Vec2) Vec2 {
	c.computeViewMatrix()
	x, y := transformPoint(c.viewMatrix, p.X, p.Y)
	return Vec2{X: x, Y: y}
}

// Unapply converts a screen point back to projected space.
func (c *Camera) Unapply(p Vec2) Vec2 {
	c.computeViewMatrix()
	x, y := transformPoint(c.invViewMatrix, p.X, p.Y)
	return Vec2{X: x, Y: y}
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's
// visible area in projected space.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	// Map each viewport corner back through the inverse view; the rect is
	// their bounding box, which over-covers when the camera is rotated.
	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
