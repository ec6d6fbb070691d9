package rowan

// Group is the exclusive container in the ownership model: every initialized
// object belongs to exactly one Group at a time. Membership is mutated only
// through Object.SetOwningGroup (and Object.Destroy), which drive the
// addToGroup/removeFromGroup hooks; there is no public way to put an object
// into two groups or into none.
//
// A Group is itself an Object: it has a name, belongs to a group (except the
// root group), and can be tagged by Sets.
type Group struct {
	Object

	members []*Object
}

// NewGroup creates a fresh, unregistered group bound to this World.
// Initialize it like any other object.
func (w *World) NewGroup() *Group {
	g := &Group{}
	g.world = w
	g.outer = g
	return g
}

// addToGroup is the addition hook invoked by Object.SetOwningGroup after the
// object's owner reference has been updated.
func (g *Group) addToGroup(o *Object) {
	g.members = append(g.members, o)
}

// removeFromGroup is the removal hook invoked by Object.SetOwningGroup and
// Object.Destroy. The object is always a member when this runs; a miss means
// membership bookkeeping is corrupt.
func (g *Group) removeFromGroup(o *Object) {
	for i, m := range g.members {
		if m == o {
			copy(g.members[i:], g.members[i+1:])
			g.members[len(g.members)-1] = nil
			g.members = g.members[:len(g.members)-1]
			return
		}
	}
	panic("rowan: object is not a member of this group")
}

// NumMembers returns the number of objects owned by this group.
func (g *Group) NumMembers() int {
	return len(g.members)
}

// MemberAt returns the member at the given index, in ownership order.
func (g *Group) MemberAt(index int) *Object {
	return g.members[index]
}

// Contains reports whether o is owned by this group.
func (g *Group) Contains(o *Object) bool {
	for _, m := range g.members {
		if m == o {
			return true
		}
	}
	return false
}

// Destroy destroys every member, most-recently-added first, then tears down
// the group itself. Members that are themselves containers cascade in turn.
func (g *Group) Destroy() {
	for len(g.members) > 0 {
		g.members[len(g.members)-1].destroy()
	}
	g.Object.Destroy()
}
