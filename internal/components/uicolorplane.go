package components

import (
	"gridpaint/internal/colorpick"
	"gridpaint/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIColorPlane shows the saturation/value plane of a Picker and turns
// pointer drags into saturation/value changes. Saturation grows to the
// right, value grows upwards.
type UIColorPlane struct {
	engine.BaseComponent

	Picker *colorpick.Picker

	CursorRadius float32
	BorderColor  rl.Color
	BorderWidth  int32

	drag  dragTracker
	cache textureCache
}

func NewUIColorPlane() *UIColorPlane {
	return &UIColorPlane{
		CursorRadius: 6,
		BorderColor:  rl.NewColor(100, 100, 115, 255),
		BorderWidth:  1,
	}
}

func (p *UIColorPlane) BindServices(s Services) {
	if s.Picker != nil {
		p.Picker = s.Picker
	}
}

// Dragging reports whether a drag that started on the plane is in progress.
func (p *UIColorPlane) Dragging() bool {
	return p.drag.dragging
}

// CursorPosition returns the screen position of the (s, v) cursor in rect.
func CursorPosition(rect rl.Rectangle, s, v float64) rl.Vector2 {
	return rl.Vector2{
		X: rect.X + float32(s)*rect.Width,
		Y: rect.Y + float32(1-v)*rect.Height,
	}
}

func (p *UIColorPlane) Draw(rect rl.Rectangle) {
	if p.Picker == nil {
		rl.DrawRectangleRec(rect, rl.DarkGray)
		return
	}
	st := p.Picker.Snapshot()
	drawStretched(p.cache.sync(st.Plane, st.PlaneVersion), rect)

	if p.BorderWidth > 0 {
		rl.DrawRectangleLinesEx(rect, float32(p.BorderWidth), p.BorderColor)
	}

	pos := CursorPosition(rect, st.HSV.S, st.HSV.V)
	ring := rl.White
	if st.HSV.V > 0.6 && st.HSV.S < 0.4 {
		ring = rl.Black
	}
	rl.DrawCircleLines(int32(pos.X), int32(pos.Y), p.CursorRadius, ring)
	rl.DrawCircleLines(int32(pos.X), int32(pos.Y), p.CursorRadius+1, rl.Fade(rl.Black, 0.5))
}

func (p *UIColorPlane) HandleInput(rect rl.Rectangle, ps PointerState) {
	if p.Picker == nil {
		return
	}
	phase := p.drag.update(rect, ps)
	if phase == dragMove || phase == dragRelease {
		pt, r := toPickerSpace(rect, ps.Pos)
		p.Picker.Pointer(pt, r)
	}
	if phase == dragRelease || phase == dragLost {
		p.Picker.Commit()
	}
}

// CancelInput ends a drag whose release will never arrive. Edits made so
// far are kept as one undo step.
func (p *UIColorPlane) CancelInput() {
	if p.drag.cancel() && p.Picker != nil {
		p.Picker.Commit()
	}
}

func (p *UIColorPlane) OnDestroy() {
	p.cache.release()
}

func (p *UIColorPlane) TypeName() string { return "UIColorPlane" }

func (p *UIColorPlane) Serialize() map[string]any {
	return map[string]any{
		"cursorRadius": p.CursorRadius,
		"borderColor":  colorToAny(p.BorderColor),
		"borderWidth":  p.BorderWidth,
	}
}

func (p *UIColorPlane) Deserialize(data map[string]any) {
	readFloat32(data, "cursorRadius", &p.CursorRadius)
	readColor(data, "borderColor", &p.BorderColor)
	readInt32(data, "borderWidth", &p.BorderWidth)
}

func init() {
	engine.RegisterComponent("UIColorPlane", func() engine.Serializable {
		return NewUIColorPlane()
	})
}
