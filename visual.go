package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// VisualKind distinguishes rendering behavior for a Visual.
type VisualKind uint8

const (
	VisualContainer VisualKind = iota // group node with no visual output
	VisualSprite                      // draws an image
	VisualSurface                     // hosts a raster surface inside a retained tree
)

// Visual is a node in the retained backend's display tree. A single flat
// struct is used for all kinds to avoid interface dispatch on the hot path.
//
// A Visual composites according to its own transform. The transform is
// normally decomposed (position, scale, rotation, pivot); SetMatrix installs
// an explicit matrix instead, which is how raster submissions keep their
// placement when wrapped into a retained tree.
type Visual struct {
	Kind VisualKind
	Name string

	Parent   *Visual
	children []*Visual

	// Transform (local, decomposed)
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	PivotX, PivotY float64

	// Explicit local matrix; overrides the decomposed fields when set.
	explicit    [6]float64
	useExplicit bool

	Alpha   float64
	Visible bool

	// Image drawn for VisualSprite and VisualSurface kinds.
	Image *ebiten.Image

	// Computed during rasterization.
	worldTransform [6]float64
	worldAlpha     float64
}

// visualDefaults sets the common default field values shared by constructors.
func visualDefaults(v *Visual) {
	v.ScaleX = 1
	v.ScaleY = 1
	v.Alpha = 1
	v.Visible = true
}

// NewContainerVisual creates a container with no visual output of its own.
func NewContainerVisual(name string) *Visual {
	v := &Visual{Name: name, Kind: VisualContainer}
	visualDefaults(v)
	return v
}

// NewSpriteVisual creates a visual that draws the given image.
func NewSpriteVisual(name string, img *ebiten.Image) *Visual {
	v := &Visual{Name: name, Kind: VisualSprite, Image: img}
	visualDefaults(v)
	return v
}

// NewSurfaceVisual creates a visual that hosts a raster image inside a
// retained tree with an explicit placement matrix. This is the wrapping node
// the compositor inserts when a raster surface is submitted to a retained
// scene.
func NewSurfaceVisual(img *ebiten.Image, placement [6]float64) *Visual {
	v := &Visual{Kind: VisualSurface, Image: img}
	visualDefaults(v)
	v.SetMatrix(placement)
	return v
}

// SetMatrix installs an explicit local matrix, overriding the decomposed
// transform fields.
func (v *Visual) SetMatrix(m [6]float64) {
	v.explicit = m
	v.useExplicit = true
}

// ClearMatrix reverts to the decomposed transform fields.
func (v *Visual) ClearMatrix() {
	v.useExplicit = false
}

// localTransform returns the node's local affine matrix.
func (v *Visual) localTransform() [6]float64 {
	if v.useExplicit {
		return v.explicit
	}
	return composeTransform(v.X, v.Y, v.ScaleX, v.ScaleY, v.Rotation, v.PivotX, v.PivotY)
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (v *Visual) AddChild(child *Visual) {
	if child == nil {
		panic("rowan: cannot add nil visual")
	}
	if isVisualAncestor(child, v) {
		panic("rowan: adding visual would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = v
	v.children = append(v.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != v.
func (v *Visual) RemoveChild(child *Visual) {
	if child.Parent != v {
		panic("rowan: visual's parent is not this node")
	}
	v.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveChildren detaches all children. Children are not destroyed.
func (v *Visual) RemoveChildren() {
	for _, child := range v.children {
		child.Parent = nil
	}
	v.children = v.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (v *Visual) Children() []*Visual {
	return v.children
}

// NumChildren returns the number of children.
func (v *Visual) NumChildren() int {
	return len(v.children)
}

// ChildAt returns the child at the given index.
func (v *Visual) ChildAt(index int) *Visual {
	return v.children[index]
}

// WorldTransform returns the world matrix computed during the most recent
// rasterization pass. Zero until the visual has been rasterized once.
func (v *Visual) WorldTransform() [6]float64 {
	return v.worldTransform
}

// --- Rasterization ---

// Rasterize composites this visual subtree into dst, in child order, applying
// accumulated transforms and alpha. This is also the compositor's strategy
// for retained submissions against a raster scene backend.
func (v *Visual) Rasterize(dst *Surface) {
	v.rasterize(dst, identityTransform, 1.0)
}

func (v *Visual) rasterize(dst *Surface, parentTransform [6]float64, parentAlpha float64) {
	if !v.Visible {
		return
	}
	v.worldTransform = multiplyAffine(parentTransform, v.localTransform())
	v.worldAlpha = parentAlpha * v.Alpha

	if v.Image != nil && v.Kind != VisualContainer {
		dst.blit(v.Image, v.worldTransform, v.worldAlpha)
	}
	for _, child := range v.children {
		child.rasterize(dst, v.worldTransform, v.worldAlpha)
	}
}

// --- Helpers ---

// isVisualAncestor reports whether candidate is an ancestor of node.
func isVisualAncestor(candidate, node *Visual) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from v.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (v *Visual) removeChildByPtr(child *Visual) {
	for i, c := range v.children {
		if c == child {
			copy(v.children[i:], v.children[i+1:])
			v.children[len(v.children)-1] = nil
			v.children = v.children[:len(v.children)-1]
			return
		}
	}
}
