package engine

import (
	"slices"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
	destroyed  bool

	// OnDestroyed fires once, after every component's OnDestroy ran.
	OnDestroyed EventWithArg[*GameObject]
}

// NewGameObject returns an active object with unit scale and a fresh UID.
func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:        nextUID.Add(1),
		Name:       name,
		Active:     true,
		Transform:  Transform{Scale: rl.Vector3{X: 1, Y: 1, Z: 1}},
		components: []Component{},
	}
}

// EnsureUIDAbove makes sure freshly created objects get UIDs greater than
// uid. Scene loading calls this so restored UIDs never collide.
func EnsureUIDAbove(uid uint64) {
	for {
		cur := nextUID.Load()
		if cur >= uid || nextUID.CompareAndSwap(cur, uid) {
			return
		}
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

// GetComponent returns the first component of g assignable to T, or the
// zero T.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
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
	g.started = true
	for _, c := range g.components {
		c.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active || g.destroyed {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

// SetActive toggles the object. Inactive objects skip Update and are not
// drawn or hit-tested by the UI canvas.
func (g *GameObject) SetActive(active bool) {
	g.Active = active
}

// ActiveInHierarchy reports whether g and all of its parents are active.
func (g *GameObject) ActiveInHierarchy() bool {
	for o := g; o != nil; o = o.Parent {
		if !o.Active {
			return false
		}
	}
	return true
}

// Destroy tears the object and its children down: components implementing
// Destroyer get OnDestroy, the object leaves its scene, and OnDestroyed
// fires. Destroying twice is a no-op.
func (g *GameObject) Destroy() {
	if g.destroyed {
		return
	}
	g.destroyed = true

	for _, child := range append([]*GameObject(nil), g.Children...) {
		child.Destroy()
	}
	for _, c := range g.components {
		if d, ok := c.(Destroyer); ok {
			d.OnDestroy()
		}
	}
	if g.Scene != nil {
		g.Scene.RemoveGameObject(g)
	}
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	g.OnDestroyed.Invoke(g)
}

func (g *GameObject) Destroyed() bool {
	return g.destroyed
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	if i := slices.Index(g.Children, child); i >= 0 {
		g.Children = slices.Delete(g.Children, i, i+1)
		child.Parent = nil
	}
}

// Forward returns the unit vector the object faces: local +Z under its
// world rotation.
func (g *GameObject) Forward() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3{Z: 1}, eulerMatrix(g.WorldRotation()))
}

// WorldPosition composes the parent chain: scale, then rotate, then
// translate.
func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	local := mulVec(g.Transform.Position, g.Parent.WorldScale())
	local = rl.Vector3Transform(local, eulerMatrix(g.Parent.WorldRotation()))
	return rl.Vector3Add(g.Parent.WorldPosition(), local)
}

// WorldRotation sums Euler angles down the chain.
func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	return mulVec(g.Parent.WorldScale(), g.Transform.Scale)
}

func mulVec(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

// eulerMatrix builds the X, then Y, then Z rotation for angles in degrees.
func eulerMatrix(deg rl.Vector3) rl.Matrix {
	m := rl.MatrixRotateX(deg.X * rl.Deg2rad)
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(deg.Y*rl.Deg2rad))
	return rl.MatrixMultiply(m, rl.MatrixRotateZ(deg.Z*rl.Deg2rad))
}
