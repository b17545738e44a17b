package engine

import "racer/internal/physics"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Collidable is implemented by components that other cars can hit.
// The returned collider is read once per tick when the scene snapshots
// colliders, so it may be rebuilt freely between ticks.
type Collidable interface {
	Collider() physics.Collider
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
