package engine

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"

	"racer/internal/physics"
)

type Transform struct {
	Position rl.Vector3
	Yaw      float32 // radians, 0 faces +Z
	Scale    rl.Vector3
}

type GameObject struct {
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	handle     Handle
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
	}
}

// Handle returns the object's handle in its scene, or NilHandle if it has not
// been added to one.
func (g *GameObject) Handle() Handle {
	return g.handle
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}

// Collider combines the colliders of every Collidable component. It returns
// physics.None when there are none and the single collider unwrapped when
// there is exactly one.
func (g *GameObject) Collider() physics.Collider {
	var parts []physics.Collider
	for _, c := range g.components {
		if col, ok := c.(Collidable); ok {
			parts = append(parts, col.Collider())
		}
	}
	switch len(parts) {
	case 0:
		return physics.None{}
	case 1:
		return parts[0]
	}
	return physics.NewComposite(parts...)
}

// IsCollidable reports whether any component implements Collidable.
func (g *GameObject) IsCollidable() bool {
	for _, c := range g.components {
		if _, ok := c.(Collidable); ok {
			return true
		}
	}
	return false
}
