package physics

import (
	"fmt"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is obstacle geometry. The set of variants is closed: None,
// HeightPlane, Box, WallSegment and Composite. Values are immutable once built.
type Collider interface {
	isCollider()
}

// Primitive is any collider except None and Composite.
type Primitive interface {
	Collider
	isPrimitive()
}

// None collides with nothing.
type None struct{}

// HeightPlane is an infinite ground or platform at height Y.
type HeightPlane struct {
	Y float32
}

// Box is an axis-aligned world-space box.
type Box struct {
	Min rl.Vector3
	Max rl.Vector3
}

// WallSegment is an infinite-height vertical wall whose footprint is the
// segment P0-P1 in the x/z plane. Y is only kept for drawing.
type WallSegment struct {
	P0 rl.Vector3
	P1 rl.Vector3
}

// Composite is the union of its children, in order.
type Composite struct {
	children []Collider
}

func (None) isCollider()        {}
func (HeightPlane) isCollider() {}
func (Box) isCollider()         {}
func (WallSegment) isCollider() {}
func (Composite) isCollider()   {}

func (HeightPlane) isPrimitive() {}
func (Box) isPrimitive()         {}
func (WallSegment) isPrimitive() {}

// NewComposite copies children so later changes to the slice are not observed.
func NewComposite(children ...Collider) Composite {
	return Composite{children: slices.Clone(children)}
}

// Len returns the number of direct children.
func (c Composite) Len() int { return len(c.children) }

// At returns the i-th direct child.
func (c Composite) At(i int) Collider { return c.children[i] }

// Children returns a copy of the direct children.
func (c Composite) Children() []Collider { return slices.Clone(c.children) }

// AABB returns the box as an AABB.
func (b Box) AABB() AABB { return AABB{Min: b.Min, Max: b.Max} }

// Flatten expands composites depth-first and drops None.
func Flatten(c Collider) []Primitive {
	var out []Primitive
	flatten(c, &out)
	return out
}

func flatten(c Collider, out *[]Primitive) {
	switch c := c.(type) {
	case nil, None:
	case HeightPlane:
		*out = append(*out, c)
	case Box:
		*out = append(*out, c)
	case WallSegment:
		*out = append(*out, c)
	case Composite:
		for _, child := range c.children {
			flatten(child, out)
		}
	default:
		panic(fmt.Sprintf("physics: unknown collider %T", c))
	}
}
