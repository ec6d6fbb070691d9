package rowan

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// levelGroupDecl declares a group in a level file.
type levelGroupDecl struct {
	Name  string `toml:"name"`
	Alias string `toml:"alias"`
}

// levelSetDecl declares a set in a level file.
type levelSetDecl struct {
	Name  string `toml:"name"`
	Alias string `toml:"alias"`
}

// levelObjectDecl declares an object in a level file.
type levelObjectDecl struct {
	Name  string   `toml:"name"`
	Alias string   `toml:"alias"`
	Group string   `toml:"group"`
	Sets  []string `toml:"sets"`
}

// levelFile is the top-level TOML structure.
type levelFile struct {
	Groups  []levelGroupDecl  `toml:"groups"`
	Sets    []levelSetDecl    `toml:"sets"`
	Objects []levelObjectDecl `toml:"objects"`
}

// Level holds everything a level file instantiated, in creation order.
// Destroy tears it all down again.
type Level struct {
	Groups  []*Group
	Sets    []*Set
	Objects []*Object
}

// LoadLevel parses a TOML level description and instantiates its groups,
// sets, and objects into w. Objects naming a group join it; others join the
// ambient current group. Objects naming sets are added to them in order.
//
// A level file looks like:
//
//	[[groups]]
//	name = "actors"
//
//	[[sets]]
//	name = "targets"
//
//	[[objects]]
//	name = "hero"
//	alias = "player"
//	group = "actors"
//	sets = ["targets"]
//
// On any error everything the call created so far is destroyed, so a failed
// load never leaves partial state behind.
func LoadLevel(w *World, data []byte) (*Level, error) {
	var file levelFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}

	lvl := &Level{}
	fail := func(err error) (*Level, error) {
		lvl.Destroy()
		return nil, err
	}

	groups := make(map[string]*Group, len(file.Groups))
	for _, decl := range file.Groups {
		g := w.NewGroup()
		if err := g.Initialize(decl.Name, decl.Alias); err != nil {
			return fail(fmt.Errorf("level group %q: %w", decl.Name, err))
		}
		lvl.Groups = append(lvl.Groups, g)
		groups[g.Name()] = g
	}

	sets := make(map[string]*Set, len(file.Sets))
	for _, decl := range file.Sets {
		s := w.NewSet()
		if err := s.Initialize(decl.Name, decl.Alias); err != nil {
			return fail(fmt.Errorf("level set %q: %w", decl.Name, err))
		}
		lvl.Sets = append(lvl.Sets, s)
		sets[s.Name()] = s
	}

	for _, decl := range file.Objects {
		o := w.NewObject()
		if decl.Group != "" {
			g, ok := groups[decl.Group]
			if !ok {
				return fail(fmt.Errorf("level object %q: unknown group %q", decl.Name, decl.Group))
			}
			// Assign before Initialize so the object never passes through the
			// ambient current group.
			o.SetOwningGroup(g)
		}
		if err := o.Initialize(decl.Name, decl.Alias); err != nil {
			// Detach the half-built object before unwinding.
			o.Destroy()
			return fail(fmt.Errorf("level object %q: %w", decl.Name, err))
		}
		lvl.Objects = append(lvl.Objects, o)
		for _, setName := range decl.Sets {
			s, ok := sets[setName]
			if !ok {
				return fail(fmt.Errorf("level object %q: unknown set %q", decl.Name, setName))
			}
			s.Add(o)
		}
	}

	return lvl, nil
}

// Destroy tears down everything the level created, objects first, in reverse
// creation order.
func (l *Level) Destroy() {
	for i := len(l.Objects) - 1; i >= 0; i-- {
		l.Objects[i].Destroy()
	}
	for i := len(l.Sets) - 1; i >= 0; i-- {
		l.Sets[i].Destroy()
	}
	for i := len(l.Groups) - 1; i >= 0; i-- {
		l.Groups[i].Destroy()
	}
	l.Objects, l.Sets, l.Groups = nil, nil, nil
}
