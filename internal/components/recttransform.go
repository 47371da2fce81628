package components

import (
	"gridpaint/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RectTransform places a UI element inside its parent's rect. AnchorMin and
// AnchorMax are fractions of the parent (0,0 is top-left); OffsetMin and
// OffsetMax are pixel offsets from those anchors to the element's top-left
// and bottom-right corners.
type RectTransform struct {
	engine.BaseComponent

	AnchorMin rl.Vector2
	AnchorMax rl.Vector2
	OffsetMin rl.Vector2
	OffsetMax rl.Vector2

	screenRect rl.Rectangle
}

func NewRectTransform() *RectTransform {
	return &RectTransform{AnchorMax: rl.Vector2{X: 1, Y: 1}}
}

// NewRectAt places a w×h element at (x, y) from the parent's top-left corner.
func NewRectAt(x, y, w, h float32) *RectTransform {
	return &RectTransform{
		OffsetMin: rl.Vector2{X: x, Y: y},
		OffsetMax: rl.Vector2{X: x + w, Y: y + h},
	}
}

// NewRectAnchored places a w×h element centred on the anchor point (ax, ay)
// of the parent, shifted by (dx, dy).
func NewRectAnchored(ax, ay, dx, dy, w, h float32) *RectTransform {
	anchor := rl.Vector2{X: ax, Y: ay}
	return &RectTransform{
		AnchorMin: anchor,
		AnchorMax: anchor,
		OffsetMin: rl.Vector2{X: dx - w/2, Y: dy - h/2},
		OffsetMax: rl.Vector2{X: dx + w/2, Y: dy + h/2},
	}
}

func (rt *RectTransform) GetScreenRect() rl.Rectangle {
	return rt.screenRect
}

// CalculateRect resolves the element's screen rect against parent.
func (rt *RectTransform) CalculateRect(parent rl.Rectangle) {
	x0 := parent.X + parent.Width*rt.AnchorMin.X + rt.OffsetMin.X
	y0 := parent.Y + parent.Height*rt.AnchorMin.Y + rt.OffsetMin.Y
	x1 := parent.X + parent.Width*rt.AnchorMax.X + rt.OffsetMax.X
	y1 := parent.Y + parent.Height*rt.AnchorMax.Y + rt.OffsetMax.Y
	rt.screenRect = rl.Rectangle{X: x0, Y: y0, Width: max(x1-x0, 0), Height: max(y1-y0, 0)}
}

func (rt *RectTransform) ContainsPoint(point rl.Vector2) bool {
	return rl.CheckCollisionPointRec(point, rt.screenRect)
}

func (rt *RectTransform) TypeName() string { return "RectTransform" }

func (rt *RectTransform) Serialize() map[string]any {
	return map[string]any{
		"anchorMin": vec2ToAny(rt.AnchorMin),
		"anchorMax": vec2ToAny(rt.AnchorMax),
		"offsetMin": vec2ToAny(rt.OffsetMin),
		"offsetMax": vec2ToAny(rt.OffsetMax),
	}
}

func (rt *RectTransform) Deserialize(data map[string]any) {
	readVec2(data, "anchorMin", &rt.AnchorMin)
	readVec2(data, "anchorMax", &rt.AnchorMax)
	readVec2(data, "offsetMin", &rt.OffsetMin)
	readVec2(data, "offsetMax", &rt.OffsetMax)
}

func init() {
	engine.RegisterComponent("RectTransform", func() engine.Serializable { return NewRectTransform() })
}
