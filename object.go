package rowan

// Object is the base identity and lifecycle unit for everything that lives in
// a World. An Object always belongs to exactly one Group after Initialize, may
// be tagged by any number of Sets, and is addressable through the World's
// NameRegistry once initialized.
//
// Objects are created via World.NewObject (or embedded in Group/Set) and are
// inert after Destroy. Reusing a destroyed object is a programming error;
// debug mode panics on it.
// destroyer lets a cascade dispatch Destroy through the outer type when an
// Object is embedded in a container like Group or Set. Go selects methods
// statically through embedded fields, so without this hook a parent group
// tearing down `[]*Object` members would call Object.Destroy on a subgroup
// and skip its member cascade.
type destroyer interface {
	Destroy()
}

type Object struct {
	world *World

	name  string
	alias string

	owner *Group

	// outer points at the embedding container, when there is one, so
	// destroy() can reach the outer type's Destroy. Set by the World
	// constructors; nil for a plain Object.
	outer destroyer

	// sets holds back-references to every Set this object was told it belongs
	// to, in registration order. The object never decides set membership
	// itself; Sets call noteInSet/noteOutOfSet. The back-references exist only
	// so Destroy can drain memberships.
	sets []*Set

	initialized bool
	destroyed   bool
}

// Name returns the registered name, or "" before Initialize.
func (o *Object) Name() string {
	return o.name
}

// Alias returns the registered alias, or "" if none was given.
func (o *Object) Alias() string {
	return o.alias
}

// World returns the World this object was created in.
func (o *Object) World() *World {
	return o.world
}

// OwningGroup returns the group that owns this object. Non-nil for every
// initialized object; nil only before Initialize and after Destroy.
func (o *Object) OwningGroup() *Group {
	return o.owner
}

// Initialize registers the object with the World's name registry and places it
// into the ambient current group if no group has been assigned yet. A name of
// "" gets a generated unique name so the object is still addressable.
//
// Returns ErrDuplicateName (wrapped) if the registry rejects the name or
// alias. Initialize is legal exactly once, on a fresh object.
func (o *Object) Initialize(name, alias string) error {
	if globalDebug {
		debugCheckDestroyed(o, "Initialize")
	}
	if o.initialized {
		panic("rowan: object already initialized")
	}
	o.name = name
	o.alias = alias
	if err := o.world.registry.add(o); err != nil {
		return err
	}
	o.initialized = true

	// Adopt the ambient current group, unless a group was assigned before
	// Initialize or this object IS the current group (the root group
	// initializes with itself current and must not join itself).
	cur := o.world.CurrentGroup()
	if o.owner == nil && cur != nil && &cur.Object != o {
		o.SetOwningGroup(cur)
	}
	return nil
}

// SetOwningGroup transfers ownership of this object to g. The previous
// group's removal hook runs before the new group's addition hook, so the
// object is never observably in two groups. Panics if g is nil: an object
// must always be in a group; only Destroy may leave it group-less.
//
// Reassigning the group the object already belongs to runs the full
// remove/add sequence; callers that want a no-op must guard themselves.
func (o *Object) SetOwningGroup(g *Group) {
	if g == nil {
		panic("rowan: object must always be in a group")
	}
	if globalDebug {
		debugCheckDestroyed(o, "SetOwningGroup")
	}
	if o.owner != nil {
		o.owner.removeFromGroup(o)
	}
	o.owner = g
	g.addToGroup(o)
}

// noteInSet records that a Set added this object. Called only by Set.Add.
func (o *Object) noteInSet(s *Set) {
	o.sets = append(o.sets, s)
}

// noteOutOfSet drops the back-reference to s. Called only by Set.Remove.
// Panics if s never added this object: removing an object from a set it does
// not belong to is an invariant violation, not a silent no-op.
func (o *Object) noteOutOfSet(s *Set) {
	for i := len(o.sets) - 1; i >= 0; i-- {
		if o.sets[i] == s {
			copy(o.sets[i:], o.sets[i+1:])
			o.sets[len(o.sets)-1] = nil
			o.sets = o.sets[:len(o.sets)-1]
			return
		}
	}
	panic("rowan: object is not a member of this set")
}

// NumSets returns how many sets currently hold this object.
func (o *Object) NumSets() int {
	return len(o.sets)
}

// Destroy tears the object down: it is unregistered from the name registry,
// removed from its owning group, and removed from every set that recorded it,
// most-recently-added first. After Destroy the object is inert.
//
// Destroy must be called exactly once; debug mode panics on a second call.
func (o *Object) Destroy() {
	if globalDebug {
		debugCheckDestroyed(o, "Destroy")
	}
	o.world.registry.remove(o)
	if o.owner != nil {
		o.owner.removeFromGroup(o)
		o.owner = nil
	}
	// Each Set.Remove calls noteOutOfSet, which pops the entry, so this
	// drains the list most-recently-added first.
	for len(o.sets) > 0 {
		o.sets[len(o.sets)-1].Remove(o)
	}
	o.destroyed = true
}

// destroy dispatches teardown through the outer type when this object is the
// embedded Object of a Group or Set, so cascades run the container's full
// Destroy rather than the embedded method.
func (o *Object) destroy() {
	if o.outer != nil {
		o.outer.Destroy()
		return
	}
	o.Destroy()
}

// IsDestroyed returns true once Destroy has run.
func (o *Object) IsDestroyed() bool {
	return o.destroyed
}
