package rowan

// Set is the non-exclusive tag collection: an object may belong to any number
// of sets. The Set owns each membership edge; objects only keep a
// back-reference so Destroy can drain their memberships. Sets add and remove
// objects themselves via Add/Remove and tell the object through
// noteInSet/noteOutOfSet.
//
// A Set is itself an Object and participates in the normal lifecycle.
type Set struct {
	Object

	members []*Object
}

// NewSet creates a fresh, unregistered set bound to this World.
// Initialize it like any other object.
func (w *World) NewSet() *Set {
	s := &Set{}
	s.world = w
	s.outer = s
	return s
}

// Add appends o to the set and records the back-reference on the object.
// Adding an object twice records it twice; callers that need set semantics in
// the mathematical sense should guard with Contains.
func (s *Set) Add(o *Object) {
	if o == nil {
		panic("rowan: cannot add nil object to set")
	}
	s.members = append(s.members, o)
	o.noteInSet(s)
}

// Remove detaches o from the set. Removing an object that is not a member is
// an invariant violation and panics.
func (s *Set) Remove(o *Object) {
	for i, m := range s.members {
		if m == o {
			copy(s.members[i:], s.members[i+1:])
			s.members[len(s.members)-1] = nil
			s.members = s.members[:len(s.members)-1]
			o.noteOutOfSet(s)
			return
		}
	}
	panic("rowan: object is not a member of this set")
}

// Contains reports whether o is a member.
func (s *Set) Contains(o *Object) bool {
	for _, m := range s.members {
		if m == o {
			return true
		}
	}
	return false
}

// NumMembers returns the number of members.
func (s *Set) NumMembers() int {
	return len(s.members)
}

// MemberAt returns the member at the given index, in insertion order.
func (s *Set) MemberAt(index int) *Object {
	return s.members[index]
}

// Destroy removes every member, most-recently-added first, then tears down
// the set itself. Members are detached, not destroyed.
func (s *Set) Destroy() {
	for len(s.members) > 0 {
		s.Remove(s.members[len(s.members)-1])
	}
	s.Object.Destroy()
}
