package rowan

// Projection maps positions between world space and screen space. An optional
// altitude accompanies world positions; whether it means anything depends on
// the projection.
//
// Screen→world is inherently lossy: a 2D screen point carries no altitude, so
// ScreenToWorld assumes altitude zero. That is a documented property of the
// mapping, not an implementation defect. Callers that do know the elevation
// of the point they are picking can use ScreenToWorldAt instead.
type Projection interface {
	// WorldToScreen maps a world position (plus altitude, if the projection
	// honors it) to pixel screen coordinates usable directly as a drawable's
	// placement.
	WorldToScreen(world Vec2, altitude float64) Vec2
	// ScreenToWorld maps a screen point back to world space, assuming
	// altitude zero.
	ScreenToWorld(screen Vec2) Vec2
	// ScreenToWorldAt maps a screen point back to world space for a known
	// altitude.
	ScreenToWorldAt(screen Vec2, altitude float64) Vec2
}

// OrthographicProjection is the identity mapping: world units are pixels and
// altitude is ignored in both directions, so round trips are exact.
type OrthographicProjection struct{}

func (OrthographicProjection) WorldToScreen(world Vec2, altitude float64) Vec2 {
	_ = altitude
	return world
}

func (OrthographicProjection) ScreenToWorld(screen Vec2) Vec2 {
	return screen
}

func (OrthographicProjection) ScreenToWorldAt(screen Vec2, altitude float64) Vec2 {
	_ = altitude
	return screen
}

// IsometricProjection maps world tile coordinates onto a diamond grid.
// World X runs toward the lower right of the screen, world Y toward the lower
// left, and altitude lifts a point straight up (negative screen Y).
type IsometricProjection struct {
	// TileWidth and TileHeight are the screen size of one world unit cell.
	// The classic 2:1 diamond uses e.g. 64x32.
	TileWidth, TileHeight float64
	// AltitudeScale is pixels of lift per altitude unit.
	AltitudeScale float64
}

// NewIsometricProjection returns a 2:1 diamond projection (64x32 tiles,
// altitude in pixels).
func NewIsometricProjection() IsometricProjection {
	return IsometricProjection{TileWidth: 64, TileHeight: 32, AltitudeScale: 1}
}

func (p IsometricProjection) WorldToScreen(world Vec2, altitude float64) Vec2 {
	return Vec2{
		X: (world.X - world.Y) * p.TileWidth / 2,
		Y: (world.X+world.Y)*p.TileHeight/2 - altitude*p.AltitudeScale,
	}
}

func (p IsometricProjection) ScreenToWorld(screen Vec2) Vec2 {
	return p.ScreenToWorldAt(screen, 0)
}

func (p IsometricProjection) ScreenToWorldAt(screen Vec2, altitude float64) Vec2 {
	// Undo the altitude lift, then invert the diamond mapping.
	sy := screen.Y + altitude*p.AltitudeScale
	hx := screen.X / p.TileWidth
	hy := sy / p.TileHeight
	return Vec2{X: hy + hx, Y: hy - hx}
}
