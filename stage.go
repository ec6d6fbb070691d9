package rowan

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpatialSource supplies the ordered sequence of visible drawables for the
// current frame. Culling, sorting, and backpressure (skipping low-priority
// drawables) are its responsibility; the compositor draws exactly what it is
// given, in the order given.
type SpatialSource interface {
	VisibleItems(view Rect) []Drawable
}

// StaticOrder is the trivial SpatialSource: a fixed, explicitly ordered list
// with no culling. Useful for small scenes and tests.
type StaticOrder struct {
	items []Drawable
}

// Add appends d to the draw order. Idempotent.
func (s *StaticOrder) Add(d Drawable) {
	s.items = addDrawable(s.items, d)
}

// Remove deletes d from the draw order. Removing an absent entry is a no-op.
func (s *StaticOrder) Remove(d Drawable) {
	s.items = removeDrawable(s.items, d)
}

// VisibleItems returns the full list regardless of view.
func (s *StaticOrder) VisibleItems(view Rect) []Drawable {
	_ = view
	return s.items
}

// Stage wires the whole system together: a World for object lifecycle, a
// Compositor for frames, a Camera, and a SpatialSource deciding what is
// visible. One Stage drives one frame at a time.
type Stage struct {
	world      *World
	compositor *Compositor
	camera     *Camera
	source     SpatialSource

	debug  bool
	logger *log.Logger
}

// NewStage creates a stage with the given backend and frame size, a full-size
// camera viewport, an orthographic projection, and a StaticOrder source.
func NewStage(backend BackendKind, width, height int) *Stage {
	cam := NewCamera(Rect{Width: float64(width), Height: float64(height)})
	comp := NewCompositor(backend, width, height)
	comp.SetCamera(cam)
	return &Stage{
		world:      NewWorld(),
		compositor: comp,
		camera:     cam,
		source:     &StaticOrder{},
		logger:     newDebugLogger(),
	}
}

// World returns the stage's object lifecycle world.
func (st *Stage) World() *World {
	return st.world
}

// Compositor returns the stage's compositor.
func (st *Stage) Compositor() *Compositor {
	return st.compositor
}

// Camera returns the stage's camera.
func (st *Stage) Camera() *Camera {
	return st.camera
}

// Source returns the current spatial source.
func (st *Stage) Source() SpatialSource {
	return st.source
}

// SetSource replaces the spatial source. Panics on nil.
func (st *Stage) SetSource(src SpatialSource) {
	if src == nil {
		panic("rowan: spatial source must not be nil")
	}
	st.source = src
}

// SetDebugMode enables or disables debug mode. When enabled, destroyed-object
// access panics and per-frame stats are logged.
func (st *Stage) SetDebugMode(enabled bool) {
	st.debug = enabled
	globalDebug = enabled
	if enabled {
		st.logger.SetLevel(log.DebugLevel)
	} else {
		st.logger.SetLevel(log.InfoLevel)
	}
}

// Update advances time-based state (camera follow/scroll). Call once per tick
// with the frame delta in seconds.
func (st *Stage) Update(dt float32) {
	st.camera.Update(dt)
}

// Frame runs one complete frame: the spatial source is asked for the visible
// set inside the camera's bounds, and the compositor traverses it.
func (st *Stage) Frame() {
	items := st.source.VisibleItems(st.camera.VisibleBounds())
	st.compositor.RenderFrame(items)
	if st.debug {
		logFrameStats(st.logger, st.compositor.Backend(), st.compositor.FrameCount(), st.compositor.Stats())
	}
}

// Draw composites the most recent frame onto screen. For a raster backend the
// frame buffer is drawn directly; for a retained backend the frame tree is
// rasterized onto the screen.
func (st *Stage) Draw(screen *ebiten.Image) {
	switch st.compositor.Backend() {
	case BackendRaster:
		screen.DrawImage(st.compositor.FrameSurface().Image(), nil)
	default:
		st.compositor.FrameVisual().Rasterize(&Surface{img: screen})
	}
}
