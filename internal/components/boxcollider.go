package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"racer/internal/engine"
	"racer/internal/physics"
)

// BoxCollider is an axis aligned solid box following its object's position.
// Rotation is ignored; scale multiplies Size.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Offset
	}
	return rl.Vector3Add(g.Transform.Position, b.Offset)
}

func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Size
	}
	return rl.Vector3Multiply(b.Size, g.Transform.Scale)
}

func (b *BoxCollider) GetAABB() physics.AABB {
	return physics.NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
}

// Collider implements engine.Collidable.
func (b *BoxCollider) Collider() physics.Collider {
	a := b.GetAABB()
	return physics.Box{Min: a.Min, Max: a.Max}
}
