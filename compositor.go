package rowan

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Drawable is anything that can submit draw primitives to a DrawManager when
// visited during a frame. Draw is invoked once per frame per visible instance
// (and every frame for always-drawn items and interstitial drawers).
type Drawable interface {
	Draw(m DrawManager)
}

// DrawManager is the contract a frame compositor offers to drawables and to
// the code driving frames. It merges draw submissions from an externally
// ordered sequence of drawables into one frame without callers needing to
// know which backend is active, and maps positions between world and screen
// space.
type DrawManager interface {
	// Frame composition. RenderFrame runs one complete frame over the given
	// ordered visible items (culling and ordering belong to the caller's
	// spatial source, not the compositor).
	RenderFrame(items []Drawable)

	// Registration. Adds are idempotent and removals of absent entries are
	// no-ops; both lists preserve insertion order for deterministic frames.
	// Mutations from inside a draw callback are buffered and applied at the
	// next frame's start.
	AddAlwaysDrawn(d Drawable)
	RemoveAlwaysDrawn(d Drawable)
	AddInterstitial(d Drawable)
	RemoveInterstitial(d Drawable)

	// Traversal references, valid only for the duration of the current draw
	// callback. Nothing may hold them past frame end.
	LastDrawn() Drawable
	NextDrawn() Drawable

	// Draw primitives, callable only from within a draw callback.
	SubmitVisual(v *Visual)
	SubmitSurface(img *ebiten.Image, placement [6]float64)

	// Coordinate mapping.
	WorldToScreen(world Vec2, altitude float64) Vec2
	ScreenToWorld(screen Vec2) Vec2

	// Snapshot exposes the composited frame as a raster surface.
	Snapshot() *Surface
}

// framePhase tracks the compositor's frame state machine.
type framePhase uint8

const (
	phaseIdle framePhase = iota
	phaseBegin
	phaseTraversing
	phaseEnd
)

// registrationOp is a buffered add/remove applied at the next frame begin.
type registrationOp struct {
	add          bool
	interstitial bool
	d            Drawable
}

// Compositor is the reference DrawManager implementation. It accumulates each
// frame into one of two backends: a retained tree of Visual nodes, or a
// single raster Surface. Submissions of either kind are accepted regardless
// of the active backend; the four-way policy below reconciles them:
//
//	scene=retained, submit=retained: append the visual directly
//	scene=retained, submit=raster:   wrap in a surface-hosting visual, append
//	scene=raster,   submit=retained: rasterize the visual into the surface
//	scene=raster,   submit=raster:   blit via the placement matrix
//
// A Compositor is single-threaded: one frame at a time, callbacks run
// synchronously.
type Compositor struct {
	backend       BackendKind
	width, height int

	proj   Projection
	camera *Camera

	alwaysDrawn   []Drawable
	interstitials []Drawable
	deferred      []registrationOp

	phase      framePhase
	last, next Drawable

	frameRoot    *Visual  // retained scene backend accumulation
	frameSurface *Surface // raster scene backend accumulation

	itemBuf []Drawable // reused per-frame traversal buffer

	frameCount uint64
	stats      FrameStats
}

var _ DrawManager = (*Compositor)(nil)

// NewCompositor creates a compositor for the given backend and frame size in
// pixels, with an orthographic projection and no camera.
func NewCompositor(backend BackendKind, width, height int) *Compositor {
	c := &Compositor{
		backend: backend,
		width:   width,
		height:  height,
		proj:    OrthographicProjection{},
	}
	switch backend {
	case BackendRetained:
		c.frameRoot = NewContainerVisual("frame")
	case BackendRaster:
		c.frameSurface = NewSurface(width, height)
	default:
		panic("rowan: unknown backend kind")
	}
	return c
}

// Backend returns the scene backend kind this compositor composites into.
func (c *Compositor) Backend() BackendKind {
	return c.backend
}

// SetProjection replaces the world↔screen projection.
func (c *Compositor) SetProjection(p Projection) {
	if p == nil {
		panic("rowan: projection must not be nil")
	}
	c.proj = p
}

// SetCamera attaches a camera applied after the projection. A nil camera
// means an identity view.
func (c *Compositor) SetCamera(cam *Camera) {
	c.camera = cam
}

// Camera returns the attached camera, or nil.
func (c *Compositor) Camera() *Camera {
	return c.camera
}

// --- Registration ---

// AddAlwaysDrawn registers d to receive a draw opportunity every frame,
// regardless of spatial visibility. Idempotent. Buffered when called
// mid-frame.
func (c *Compositor) AddAlwaysDrawn(d Drawable) {
	if c.phase != phaseIdle {
		c.deferred = append(c.deferred, registrationOp{add: true, d: d})
		return
	}
	c.alwaysDrawn = addDrawable(c.alwaysDrawn, d)
}

// RemoveAlwaysDrawn unregisters d. Removing an absent entry is a no-op.
// Buffered when called mid-frame.
func (c *Compositor) RemoveAlwaysDrawn(d Drawable) {
	if c.phase != phaseIdle {
		c.deferred = append(c.deferred, registrationOp{add: false, d: d})
		return
	}
	c.alwaysDrawn = removeDrawable(c.alwaysDrawn, d)
}

// AddInterstitial registers d to be invoked before the first item, between
// every pair of consecutive items, and after the last item of every frame.
// Idempotent. Buffered when called mid-frame.
func (c *Compositor) AddInterstitial(d Drawable) {
	if c.phase != phaseIdle {
		c.deferred = append(c.deferred, registrationOp{add: true, interstitial: true, d: d})
		return
	}
	c.interstitials = addDrawable(c.interstitials, d)
}

// RemoveInterstitial unregisters d. Removing an absent entry is a no-op.
// Buffered when called mid-frame.
func (c *Compositor) RemoveInterstitial(d Drawable) {
	if c.phase != phaseIdle {
		c.deferred = append(c.deferred, registrationOp{add: false, interstitial: true, d: d})
		return
	}
	c.interstitials = removeDrawable(c.interstitials, d)
}

// applyDeferred applies registration mutations buffered during the previous
// frame, in call order.
func (c *Compositor) applyDeferred() {
	for i, op := range c.deferred {
		switch {
		case op.interstitial && op.add:
			c.interstitials = addDrawable(c.interstitials, op.d)
		case op.interstitial:
			c.interstitials = removeDrawable(c.interstitials, op.d)
		case op.add:
			c.alwaysDrawn = addDrawable(c.alwaysDrawn, op.d)
		default:
			c.alwaysDrawn = removeDrawable(c.alwaysDrawn, op.d)
		}
		c.deferred[i].d = nil
	}
	c.deferred = c.deferred[:0]
}

func addDrawable(list []Drawable, d Drawable) []Drawable {
	if d == nil {
		panic("rowan: cannot register nil drawable")
	}
	for _, e := range list {
		if e == d {
			return list
		}
	}
	return append(list, d)
}

func removeDrawable(list []Drawable, d Drawable) []Drawable {
	for i, e := range list {
		if e == d {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}

// --- Frame traversal ---

// RenderFrame runs one complete frame: deferred registrations are applied,
// the backend accumulation is reset, and the supplied visible items plus all
// always-drawn items are traversed in order with interstitial drawers firing
// before the first item, between every pair, and after the last. The frame
// always runs to completion.
//
// Panics if a frame is already in flight on this compositor.
func (c *Compositor) RenderFrame(items []Drawable) {
	if c.phase != phaseIdle {
		panic("rowan: frame already in flight")
	}
	t0 := time.Now()

	c.phase = phaseBegin
	c.applyDeferred()
	c.resetFrame()

	c.itemBuf = append(c.itemBuf[:0], items...)
	c.itemBuf = append(c.itemBuf, c.alwaysDrawn...)
	n := len(c.itemBuf)

	c.stats = FrameStats{ItemCount: n, InterstitialCount: len(c.interstitials)}

	c.phase = phaseTraversing
	for i := 0; i < n; i++ {
		// Interstitial pass between the previous item and this one.
		c.last, c.next = c.itemAt(i-1), c.itemBuf[i]
		c.runInterstitials()

		// The item itself sees its traversal neighbors.
		c.last, c.next = c.itemAt(i-1), c.itemAt(i+1)
		c.itemBuf[i].Draw(c)
	}
	// Trailing interstitial pass after the last item.
	c.last, c.next = c.itemAt(n-1), nil
	c.runInterstitials()

	c.phase = phaseEnd
	c.last, c.next = nil, nil
	for i := range c.itemBuf {
		c.itemBuf[i] = nil
	}
	c.stats.FrameTime = time.Since(t0)
	c.frameCount++
	c.phase = phaseIdle
}

// itemAt returns the traversal item at index i, or nil when out of range.
func (c *Compositor) itemAt(i int) Drawable {
	if i < 0 || i >= len(c.itemBuf) {
		return nil
	}
	return c.itemBuf[i]
}

// runInterstitials invokes every interstitial drawer in registration order.
func (c *Compositor) runInterstitials() {
	for _, d := range c.interstitials {
		c.stats.InterstitialCalls++
		d.Draw(c)
	}
}

// resetFrame clears per-frame accumulation state.
func (c *Compositor) resetFrame() {
	c.last, c.next = nil, nil
	switch c.backend {
	case BackendRetained:
		c.frameRoot.RemoveChildren()
	case BackendRaster:
		c.frameSurface.Clear()
	}
}

// LastDrawn returns the drawable visited before the current callback's
// position in the traversal, or nil at the front of the frame. Valid only
// for the duration of the current draw callback; callers must not retain it.
func (c *Compositor) LastDrawn() Drawable {
	return c.last
}

// NextDrawn returns the drawable that will be visited after the current
// callback's position, or nil at the end of the frame. Valid only for the
// duration of the current draw callback; callers must not retain it.
func (c *Compositor) NextDrawn() Drawable {
	return c.next
}

// --- Draw primitives ---

// submissionKind tags which backend kind a submission is native to.
type submissionKind uint8

const (
	submitRetained submissionKind = iota
	submitRaster
)

// submission is the uniform payload handed to a submit strategy.
type submission struct {
	visual    *Visual
	image     *ebiten.Image
	placement [6]float64
}

// submitOps is the fixed policy table for the four backend combinations,
// indexed [scene backend][submission kind].
var submitOps = [2][2]func(*Compositor, submission){
	BackendRetained: {
		submitRetained: (*Compositor).appendVisual,
		submitRaster:   (*Compositor).wrapSurface,
	},
	BackendRaster: {
		submitRetained: (*Compositor).rasterizeVisual,
		submitRaster:   (*Compositor).blitSurface,
	},
}

// SubmitVisual submits a retained-style visual element, composited according
// to its own transform. May be called multiple times per callback; order is
// preserved in the output. Panics when called outside a draw callback.
func (c *Compositor) SubmitVisual(v *Visual) {
	if c.phase != phaseTraversing {
		panic("rowan: SubmitVisual called outside a draw callback")
	}
	if v == nil {
		panic("rowan: cannot submit nil visual")
	}
	c.stats.Submissions++
	submitOps[c.backend][submitRetained](c, submission{visual: v})
}

// SubmitSurface submits a raster image with a placement matrix. May be called
// multiple times per callback; order is preserved in the output. Panics when
// called outside a draw callback.
func (c *Compositor) SubmitSurface(img *ebiten.Image, placement [6]float64) {
	if c.phase != phaseTraversing {
		panic("rowan: SubmitSurface called outside a draw callback")
	}
	if img == nil {
		panic("rowan: cannot submit nil surface")
	}
	c.stats.Submissions++
	submitOps[c.backend][submitRaster](c, submission{image: img, placement: placement})
}

// appendVisual handles {scene=retained, submit=retained}.
func (c *Compositor) appendVisual(s submission) {
	c.frameRoot.AddChild(s.visual)
}

// wrapSurface handles {scene=retained, submit=raster}: the raster image is
// wrapped in a lightweight surface-hosting visual carrying the placement
// matrix and appended at the current position.
func (c *Compositor) wrapSurface(s submission) {
	c.frameRoot.AddChild(NewSurfaceVisual(s.image, s.placement))
}

// rasterizeVisual handles {scene=raster, submit=retained}: the visual subtree
// is rendered into the current raster surface.
func (c *Compositor) rasterizeVisual(s submission) {
	s.visual.Rasterize(c.frameSurface)
}

// blitSurface handles {scene=raster, submit=raster}.
func (c *Compositor) blitSurface(s submission) {
	c.frameSurface.Blit(s.image, s.placement)
}

// --- Coordinate mapping ---

// WorldToScreen maps a world position (plus altitude, honored only by
// projections that use it) to screen pixel coordinates, applying the camera
// view if one is attached.
func (c *Compositor) WorldToScreen(world Vec2, altitude float64) Vec2 {
	p := c.proj.WorldToScreen(world, altitude)
	if c.camera != nil {
		p = c.camera.Apply(p)
	}
	return p
}

// ScreenToWorld maps a screen point back to a world position. Altitude is
// unrecoverable from a 2D screen point; the result assumes altitude zero.
func (c *Compositor) ScreenToWorld(screen Vec2) Vec2 {
	if c.camera != nil {
		screen = c.camera.Unapply(screen)
	}
	return c.proj.ScreenToWorld(screen)
}

// --- Snapshot ---

// Snapshot returns the composited frame as a raster surface. After a frame
// completes this is the finished frame; calling mid-frame yields the partial
// composite accumulated so far. The returned surface is an independent copy
// for the raster backend and a fresh rasterization for the retained backend.
func (c *Compositor) Snapshot() *Surface {
	switch c.backend {
	case BackendRaster:
		return c.frameSurface.Clone()
	default:
		dst := NewSurface(c.width, c.height)
		c.frameRoot.Rasterize(dst)
		return dst
	}
}

// FrameVisual returns the retained backend's frame tree, rebuilt every frame.
// Nil for a raster-backend compositor. Feed it to a retained renderer after
// RenderFrame returns.
func (c *Compositor) FrameVisual() *Visual {
	return c.frameRoot
}

// FrameSurface returns the raster backend's frame buffer. Nil for a
// retained-backend compositor.
func (c *Compositor) FrameSurface() *Surface {
	return c.frameSurface
}

// Stats returns the most recent frame's statistics.
func (c *Compositor) Stats() FrameStats {
	return c.stats
}

// FrameCount returns how many frames this compositor has completed.
func (c *Compositor) FrameCount() uint64 {
	return c.frameCount
}
