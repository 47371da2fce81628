package components

import (
	"gridpaint/internal/colorpick"
	"gridpaint/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LineRenderer draws a straight 3D line from the object's position along
// its forward axis, like a controller ray.
type LineRenderer struct {
	engine.BaseComponent
	Length float32
	Color  rl.Color
}

func NewLineRenderer(length float32, color rl.Color) *LineRenderer {
	return &LineRenderer{Length: length, Color: color}
}

// Endpoints returns the world-space start and end of the line.
func (l *LineRenderer) Endpoints() (start, end rl.Vector3) {
	g := l.GetGameObject()
	if g == nil {
		return
	}
	start = g.WorldPosition()
	end = rl.Vector3Add(start, rl.Vector3Scale(g.Forward(), l.Length))
	return start, end
}

func (l *LineRenderer) Draw() {
	g := l.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}
	start, end := l.Endpoints()
	rl.DrawLine3D(start, end, l.Color)
	rl.DrawSphere(end, 0.03, l.Color)
}

func (l *LineRenderer) TypeName() string { return "LineRenderer" }

func (l *LineRenderer) Serialize() map[string]any {
	return map[string]any{
		"length": l.Length,
		"color":  colorToAny(l.Color),
	}
}

func (l *LineRenderer) Deserialize(data map[string]any) {
	readFloat32(data, "length", &l.Length)
	readColor(data, "color", &l.Color)
}

func init() {
	engine.RegisterComponent("LineRenderer", func() engine.Serializable {
		return NewLineRenderer(1, rl.White)
	})
}

// LineColor keeps the LineRenderer on the same object in the selected
// colour.
type LineColor struct {
	engine.BaseComponent
	busBinding
}

func (l *LineColor) Start() {
	listen(&l.busBinding, l, (*LineColor).apply)
}

func (l *LineColor) apply(c colorpick.Change) {
	if lr := engine.GetComponent[*LineRenderer](l.GetGameObject()); lr != nil {
		lr.Color = c.Color
	}
}
