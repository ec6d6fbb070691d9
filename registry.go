package rowan

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrDuplicateName is returned when registering an object whose name or alias
// is already taken. Wrapped errors carry the colliding name; test with
// errors.Is.
var ErrDuplicateName = errors.New("duplicate name")

// NameRegistry is the World-wide lookup from name and alias to Object.
// Every initialized object is registered here; Destroy unregisters it.
type NameRegistry struct {
	byName  map[string]*Object
	byAlias map[string]*Object
}

// newNameRegistry creates an empty registry.
func newNameRegistry() *NameRegistry {
	return &NameRegistry{
		byName:  make(map[string]*Object),
		byAlias: make(map[string]*Object),
	}
}

// add registers o under its name and alias. An empty name gets a generated
// unique one assigned back onto the object, so every registered object is
// addressable. Fails with ErrDuplicateName on a name or alias collision
// without mutating the registry.
func (r *NameRegistry) add(o *Object) error {
	if o.name == "" {
		o.name = "object-" + uuid.NewString()
	}
	if _, taken := r.byName[o.name]; taken {
		return fmt.Errorf("register %q: %w", o.name, ErrDuplicateName)
	}
	if o.alias != "" {
		if _, taken := r.byAlias[o.alias]; taken {
			return fmt.Errorf("register alias %q: %w", o.alias, ErrDuplicateName)
		}
	}
	r.byName[o.name] = o
	if o.alias != "" {
		r.byAlias[o.alias] = o
	}
	return nil
}

// remove unregisters o. Removing an object that was never registered is a
// no-op.
func (r *NameRegistry) remove(o *Object) {
	if r.byName[o.name] == o {
		delete(r.byName, o.name)
	}
	if o.alias != "" && r.byAlias[o.alias] == o {
		delete(r.byAlias, o.alias)
	}
}

// Lookup returns the object registered under name, checking aliases as a
// fallback. Returns nil if nothing matches.
func (r *NameRegistry) Lookup(name string) *Object {
	if o, ok := r.byName[name]; ok {
		return o
	}
	return r.byAlias[name]
}

// Len returns the number of registered objects.
func (r *NameRegistry) Len() int {
	return len(r.byName)
}
