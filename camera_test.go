package rowan

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const testViewportW, testViewportH = 640, 480

func testCamera() *Camera {
	return NewCamera(Rect{Width: testViewportW, Height: testViewportH})
}

func TestCameraDefaultCentersOrigin(t *testing.T) {
	c := testCamera()
	p := c.Apply(Vec2{X: 0, Y: 0})
	vecNear(t, p, Vec2{X: testViewportW / 2, Y: testViewportH / 2}, "origin")
}

func TestCameraApplyUnapplyInverse(t *testing.T) {
	c := testCamera()
	c.X, c.Y = 100, -50
	c.Zoom = 2
	c.Rotation = 0.3
	c.MarkDirty()

	want := Vec2{X: 12.5, Y: 77}
	got := c.Unapply(c.Apply(want))
	vecNear(t, got, want, "apply/unapply round trip")
}

func TestCameraZoom(t *testing.T) {
	c := testCamera()
	c.Zoom = 2
	c.MarkDirty()
	// A point one unit right of the camera center lands two pixels right of
	// the viewport center.
	p := c.Apply(Vec2{X: 1, Y: 0})
	vecNear(t, p, Vec2{X: testViewportW/2 + 2, Y: testViewportH / 2}, "zoomed point")
}

func TestCameraScrollTo(t *testing.T) {
	c := testCamera()
	c.ScrollTo(100, 200, 1.0, ease.Linear)

	// Halfway through the tween the camera is halfway there.
	for i := 0; i < 30; i++ {
		c.Update(1.0 / 60)
	}
	if math.Abs(c.X-50) > 1 || math.Abs(c.Y-100) > 2 {
		t.Errorf("mid-scroll position = (%v, %v), want ≈(50, 100)", c.X, c.Y)
	}

	// Run past the end; the tween completes and detaches.
	for i := 0; i < 60; i++ {
		c.Update(1.0 / 60)
	}
	if c.X != 100 || c.Y != 200 {
		t.Errorf("final position = (%v, %v), want (100, 200)", c.X, c.Y)
	}
	if c.scrollTween != nil {
		t.Error("finished scroll tween should be released")
	}
}

func TestCameraFollow(t *testing.T) {
	c := testCamera()
	target := NewSpriteVisual("target", WhitePixel)
	target.X = 300
	target.Y = 400
	// Compute the target's world transform the way a frame would.
	buildVisualTree(target).Rasterize(NewSurface(8, 8))

	c.Follow(target, 0, 0, 1.0)
	c.Update(1.0 / 60)
	if c.X != 300 || c.Y != 400 {
		t.Errorf("snap follow position = (%v, %v), want (300, 400)", c.X, c.Y)
	}
}

// buildVisualTree is a test helper wrapping children in a root container.
func buildVisualTree(children ...*Visual) *Visual {
	root := NewContainerVisual("root")
	for _, c := range children {
		root.AddChild(c)
	}
	return root
}

func TestCameraBoundsClamp(t *testing.T) {
	c := testCamera()
	c.SetBounds(Rect{X: 0, Y: 0, Width: 2000, Height: 2000})
	c.X, c.Y = -500, 3000
	c.Update(1.0 / 60)

	halfW := testViewportW / 2.0
	halfH := testViewportH / 2.0
	if c.X != halfW {
		t.Errorf("clamped X = %v, want %v", c.X, halfW)
	}
	if c.Y != 2000-halfH {
		t.Errorf("clamped Y = %v, want %v", c.Y, 2000-halfH)
	}
}

func TestCameraVisibleBounds(t *testing.T) {
	c := testCamera()
	b := c.VisibleBounds()
	if b.Width != testViewportW || b.Height != testViewportH {
		t.Errorf("visible bounds = %vx%v, want viewport size", b.Width, b.Height)
	}
	if !b.Contains(0, 0) {
		t.Error("default camera should see the origin")
	}
}
