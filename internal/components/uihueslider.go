package components

import (
	"gridpaint/internal/colorpick"
	"gridpaint/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIHueSlider shows the hue track of a Picker with a handle at the current
// hue. Hue runs left to right.
type UIHueSlider struct {
	engine.BaseComponent

	Picker *colorpick.Picker

	HandleWidth float32
	HandleColor rl.Color
	BorderColor rl.Color

	drag  dragTracker
	cache textureCache
}

func NewUIHueSlider() *UIHueSlider {
	return &UIHueSlider{
		HandleWidth: 4,
		HandleColor: rl.White,
		BorderColor: rl.NewColor(100, 100, 115, 255),
	}
}

func (h *UIHueSlider) BindServices(s Services) {
	if s.Picker != nil {
		h.Picker = s.Picker
	}
}

func (h *UIHueSlider) Dragging() bool {
	return h.drag.dragging
}

// HandleRect returns the screen rectangle of the handle for hue in rect.
func HandleRect(rect rl.Rectangle, hue float64, width float32) rl.Rectangle {
	x := rect.X + float32(hue)*rect.Width
	return rl.Rectangle{X: x - width/2, Y: rect.Y - 2, Width: width, Height: rect.Height + 4}
}

func (h *UIHueSlider) Draw(rect rl.Rectangle) {
	if h.Picker == nil {
		rl.DrawRectangleRec(rect, rl.DarkGray)
		return
	}
	// The track never changes, version 1 uploads it once.
	drawStretched(h.cache.sync(h.Picker.HueTrack(), 1), rect)
	rl.DrawRectangleLinesEx(rect, 1, h.BorderColor)

	handle := HandleRect(rect, h.Picker.HSV().H, h.HandleWidth)
	rl.DrawRectangleRec(handle, h.HandleColor)
	rl.DrawRectangleLinesEx(handle, 1, rl.Black)
}

func (h *UIHueSlider) HandleInput(rect rl.Rectangle, ps PointerState) {
	if h.Picker == nil {
		return
	}
	phase := h.drag.update(rect, ps)
	if phase == dragMove || phase == dragRelease {
		h.Picker.HuePointer(float64(ps.Pos.X), float64(rect.X), float64(rect.Width))
	}
	if phase == dragRelease || phase == dragLost {
		h.Picker.Commit()
	}
}

// CancelInput ends a drag whose release will never arrive. Edits made so
// far are kept as one undo step.
func (h *UIHueSlider) CancelInput() {
	if h.drag.cancel() && h.Picker != nil {
		h.Picker.Commit()
	}
}

func (h *UIHueSlider) OnDestroy() {
	h.cache.release()
}

func (h *UIHueSlider) TypeName() string { return "UIHueSlider" }

func (h *UIHueSlider) Serialize() map[string]any {
	return map[string]any{
		"handleWidth": h.HandleWidth,
		"handleColor": colorToAny(h.HandleColor),
		"borderColor": colorToAny(h.BorderColor),
	}
}

func (h *UIHueSlider) Deserialize(data map[string]any) {
	readFloat32(data, "handleWidth", &h.HandleWidth)
	readColor(data, "handleColor", &h.HandleColor)
	readColor(data, "borderColor", &h.BorderColor)
}

func init() {
	engine.RegisterComponent("UIHueSlider", func() engine.Serializable {
		return NewUIHueSlider()
	})
}
