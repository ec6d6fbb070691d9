package rowan

// World owns the object lifecycle machinery: the name registry, the root
// group, and the ambient current-group stack that Initialize consults when an
// object has no group assigned.
//
// A World is single-threaded; see the package documentation.
type World struct {
	registry *NameRegistry
	root     *Group

	// groupStack is the ambient current-group stack. The top entry is the
	// group newly initialized objects join. The root group is always the
	// bottom entry and can never be popped.
	groupStack []*Group
}

// NewWorld creates a World with an initialized root group, which starts as
// the ambient current group.
func NewWorld() *World {
	w := &World{registry: newNameRegistry()}
	root := w.NewGroup()
	// Root is current during its own Initialize so the self-adoption guard
	// applies and root stays group-less.
	w.groupStack = append(w.groupStack, root)
	if err := root.Initialize("root", ""); err != nil {
		// Unreachable: the registry is empty.
		panic("rowan: root group registration failed: " + err.Error())
	}
	w.root = root
	return w
}

// Registry returns the World's name registry.
func (w *World) Registry() *NameRegistry {
	return w.registry
}

// RootGroup returns the root group. The root group owns every object that is
// not explicitly placed elsewhere and is the only group with no owner of its
// own.
func (w *World) RootGroup() *Group {
	return w.root
}

// NewObject creates a fresh, unregistered object bound to this World.
// Call Initialize on it to register it and give it a group.
func (w *World) NewObject() *Object {
	return &Object{world: w}
}

// CurrentGroup returns the top of the current-group stack, or nil before the
// root group exists (only during NewWorld itself).
func (w *World) CurrentGroup() *Group {
	if len(w.groupStack) == 0 {
		return nil
	}
	return w.groupStack[len(w.groupStack)-1]
}

// PushCurrentGroup makes g the ambient current group until the matching
// PopCurrentGroup. Use the push/pop pair around a block of object creation:
//
//	w.PushCurrentGroup(level)
//	defer w.PopCurrentGroup()
//
// Panics if g is nil.
func (w *World) PushCurrentGroup(g *Group) {
	if g == nil {
		panic("rowan: cannot push nil current group")
	}
	w.groupStack = append(w.groupStack, g)
}

// PopCurrentGroup restores the previous current group.
// Panics on an attempt to pop the root group (stack underflow).
func (w *World) PopCurrentGroup() {
	if len(w.groupStack) <= 1 {
		panic("rowan: current-group stack underflow")
	}
	w.groupStack[len(w.groupStack)-1] = nil
	w.groupStack = w.groupStack[:len(w.groupStack)-1]
}
