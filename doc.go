// Package rowan is a 2D scene-composition core for [Ebitengine].
//
// Rowan provides two things: the identity/lifecycle/ownership contract every
// scene object obeys, and a frame compositor that merges heterogeneous
// drawables into a single frame without callers knowing which rendering
// backend is active.
//
// # Objects, groups, and sets
//
// Every long-lived thing in a scene is an [Object], created through a
// [World]. An initialized object is registered in the world's [NameRegistry]
// and owned by exactly one [Group]; any number of [Set] tags may also hold
// it. Destroy unwinds all of that in one call:
//
//	w := rowan.NewWorld()
//	hero := w.NewObject()
//	if err := hero.Initialize("hero", "player"); err != nil { ... }
//	// hero now belongs to w.RootGroup()
//	hero.Destroy()
//
// Group membership transfers are transactional: SetOwningGroup detaches from
// the old group before attaching to the new one, so an object is never
// observably in two groups or in none.
//
// # Frame composition
//
// A [Compositor] runs one frame at a time over an externally ordered list of
// [Drawable] items. Each item's Draw callback submits visuals or raster
// surfaces through the [DrawManager] primitives; the compositor reconciles
// both submission kinds with whichever backend it composites into (a retained
// [Visual] tree or a raster [Surface]). Interstitial drawers fire before,
// between, and after every item, and always-drawn items get a draw
// opportunity every frame regardless of visibility.
//
//	comp := rowan.NewCompositor(rowan.BackendRaster, 640, 480)
//	comp.AddInterstitial(particles)
//	comp.RenderFrame(visible) // visible comes from your spatial source
//	comp.Snapshot().WritePNG("frame.png")
//
// [Stage] bundles a World, Compositor, [Camera], and a [SpatialSource] into
// the usual game-loop shape:
//
//	type Game struct{ stage *rowan.Stage }
//
//	func (g *Game) Update() error        { g.stage.Update(1.0 / 60); g.stage.Frame(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.stage.Draw(s) }
//
// Coordinate mapping between world and screen space goes through a
// [Projection] (orthographic or isometric) plus the camera. Screen→world
// cannot recover altitude from a flat point; it assumes altitude zero.
//
// Rowan is single-threaded: one frame in flight per compositor, and object
// lifecycle mutation must not race a traversal.
//
// [Ebitengine]: https://ebitengine.org
package rowan
