package rowan

import "testing"

func TestGroupIsAnObject(t *testing.T) {
	w := NewWorld()
	g := w.NewGroup()
	if err := g.Initialize("actors", "cast"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if g.OwningGroup() != w.RootGroup() {
		t.Error("a non-root group should itself be owned by a group")
	}
	if w.Registry().Lookup("cast") != &g.Object {
		t.Error("group alias should resolve")
	}
}

func TestGroupMembershipOrder(t *testing.T) {
	w := NewWorld()
	g := w.NewGroup()
	if err := g.Initialize("g", ""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	var objs []*Object
	for _, name := range []string{"a", "b", "c"} {
		o := w.NewObject()
		if err := o.Initialize(name, ""); err != nil {
			t.Fatalf("Initialize %s: %v", name, err)
		}
		o.SetOwningGroup(g)
		objs = append(objs, o)
	}
	if g.NumMembers() != 3 {
		t.Fatalf("NumMembers = %d, want 3", g.NumMembers())
	}
	for i, o := range objs {
		if g.MemberAt(i) != o {
			t.Errorf("MemberAt(%d) out of order", i)
		}
	}
}

func TestGroupDestroyCascadesNestedGroup(t *testing.T) {
	w := NewWorld()
	parent := w.NewGroup()
	child := w.NewGroup()
	if err := parent.Initialize("parent", ""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := child.Initialize("child", ""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	child.SetOwningGroup(parent)
	o := w.NewObject()
	if err := o.Initialize("inner", ""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	o.SetOwningGroup(child)

	parent.Destroy()

	if !child.IsDestroyed() {
		t.Error("nested group should be destroyed with its parent")
	}
	if !o.IsDestroyed() {
		t.Error("grandchild object should be destroyed through the nested group")
	}
	if o.OwningGroup() != nil {
		t.Error("grandchild should have no owner after the cascade")
	}
	if w.Registry().Lookup("inner") != nil || w.Registry().Lookup("child") != nil {
		t.Error("cascade should unregister the whole subtree")
	}
}

func TestGroupDestroyCascadesNestedSet(t *testing.T) {
	w := NewWorld()
	g := w.NewGroup()
	if err := g.Initialize("g", ""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	s := w.NewSet()
	if err := s.Initialize("tags", ""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	s.SetOwningGroup(g)
	o := w.NewObject()
	if err := o.Initialize("o", ""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	s.Add(o)

	g.Destroy()

	if !s.IsDestroyed() {
		t.Error("nested set should be destroyed with the group")
	}
	if o.IsDestroyed() {
		t.Error("set members are detached by the cascade, not destroyed")
	}
	if o.NumSets() != 0 {
		t.Errorf("NumSets = %d, want 0 after the set's teardown", o.NumSets())
	}
	if w.Registry().Lookup("tags") != nil {
		t.Error("destroyed set should be unregistered")
	}
}

func TestGroupDestroyCascades(t *testing.T) {
	w := NewWorld()
	g := w.NewGroup()
	if err := g.Initialize("g", ""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	a := w.NewObject()
	b := w.NewObject()
	if err := a.Initialize("a", ""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := b.Initialize("b", ""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	a.SetOwningGroup(g)
	b.SetOwningGroup(g)

	g.Destroy()

	if !a.IsDestroyed() || !b.IsDestroyed() {
		t.Error("group members should be destroyed with the group")
	}
	if !g.IsDestroyed() {
		t.Error("group itself should be destroyed")
	}
	if w.Registry().Lookup("a") != nil || w.Registry().Lookup("g") != nil {
		t.Error("destroyed group and members should be unregistered")
	}
	if w.RootGroup().Contains(&g.Object) {
		t.Error("destroyed group should have left the root group")
	}
}
