package rowan

// Prop is the glue between the object lifecycle and the compositor: a scene
// object that owns a Visual and submits it each time it is visited. Its world
// position (and altitude, under a projection that honors it) is mapped
// through the compositor, so the same prop renders correctly under any
// projection and backend.
type Prop struct {
	Object

	// Visual is what the prop submits when drawn. May be nil for a prop that
	// is pure bookkeeping.
	Visual *Visual

	// WorldX, WorldY, Altitude position the prop in world space.
	WorldX, WorldY float64
	Altitude       float64
}

// NewProp creates a fresh, unregistered prop bound to this World.
// Initialize it like any other object.
func (w *World) NewProp(v *Visual) *Prop {
	p := &Prop{Visual: v}
	p.world = w
	return p
}

// Draw places the visual at the prop's projected screen position and submits
// it.
func (p *Prop) Draw(m DrawManager) {
	if p.Visual == nil {
		return
	}
	s := m.WorldToScreen(Vec2{X: p.WorldX, Y: p.WorldY}, p.Altitude)
	p.Visual.X = s.X
	p.Visual.Y = s.Y
	m.SubmitVisual(p.Visual)
}
