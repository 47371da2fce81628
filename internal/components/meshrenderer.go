package components

import (
	"gridpaint/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
	Wires    bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}

	pos := g.WorldPosition()
	size := m.Size
	scale := g.WorldScale()
	size.X *= scale.X
	size.Y *= scale.Y
	size.Z *= scale.Z

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(pos, size, m.Color)
		if m.Wires {
			rl.DrawCubeWiresV(pos, size, rl.Black)
		}
	case MeshSphere:
		rl.DrawSphere(pos, size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: size.X, Y: size.Z}, m.Color)
	}
}

func (m *MeshRenderer) TypeName() string { return "MeshRenderer" }

func (m *MeshRenderer) Serialize() map[string]any {
	return map[string]any{
		"meshType": int(m.MeshType),
		"color":    colorToAny(m.Color),
		"size":     []float32{m.Size.X, m.Size.Y, m.Size.Z},
		"wires":    m.Wires,
	}
}

func (m *MeshRenderer) Deserialize(data map[string]any) {
	if v, ok := data["meshType"].(float64); ok {
		m.MeshType = MeshType(int(v))
	}
	readColor(data, "color", &m.Color)
	if v, ok := data["size"].([]any); ok && len(v) >= 3 {
		x, _ := v[0].(float64)
		y, _ := v[1].(float64)
		z, _ := v[2].(float64)
		m.Size = rl.Vector3{X: float32(x), Y: float32(y), Z: float32(z)}
	}
	readBool(data, "wires", &m.Wires)
}

func init() {
	engine.RegisterComponent("MeshRenderer", func() engine.Serializable {
		return NewMeshRenderer(MeshCube, rl.White, rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}
