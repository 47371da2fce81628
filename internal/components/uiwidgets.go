package components

import (
	"gridpaint/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Plain widgets the picker panel is assembled from. Draw order on a single
// object: panel, button face, image, text.

type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

// UIText draws one line of text, vertically centred in its rect.
type UIText struct {
	engine.BaseComponent

	Text      string
	FontSize  int32
	Color     rl.Color
	Alignment TextAlignment
}

func NewUIText() *UIText {
	return &UIText{FontSize: 20, Color: rl.RayWhite}
}

func (t *UIText) DrawOrder() int { return 10 }

func (t *UIText) Draw(rect rl.Rectangle) {
	if t.Text == "" {
		return
	}
	x := rect.X
	if t.Alignment != TextAlignLeft {
		slack := rect.Width - float32(rl.MeasureText(t.Text, t.FontSize))
		if t.Alignment == TextAlignCenter {
			slack /= 2
		}
		x += slack
	}
	y := rect.Y + (rect.Height-float32(t.FontSize))/2
	rl.DrawText(t.Text, int32(x), int32(y), t.FontSize, t.Color)
}

func (t *UIText) TypeName() string { return "UIText" }

func (t *UIText) Serialize() map[string]any {
	return map[string]any{
		"text":      t.Text,
		"fontSize":  t.FontSize,
		"color":     colorToAny(t.Color),
		"alignment": int(t.Alignment),
	}
}

func (t *UIText) Deserialize(data map[string]any) {
	readString(data, "text", &t.Text)
	readInt32(data, "fontSize", &t.FontSize)
	readColor(data, "color", &t.Color)
	var align int32
	readInt32(data, "alignment", &align)
	t.Alignment = TextAlignment(align)
}

// UIPanel fills its rect with a background and an optional outline.
type UIPanel struct {
	engine.BaseComponent

	Color       rl.Color
	BorderColor rl.Color
	BorderWidth int32
	Roundness   float32 // 0..1, 0 draws square corners
}

func NewUIPanel() *UIPanel {
	return &UIPanel{
		Color:       rl.NewColor(28, 28, 36, 230),
		BorderColor: rl.NewColor(70, 70, 85, 255),
		BorderWidth: 1,
	}
}

func (p *UIPanel) DrawOrder() int { return -10 }

func (p *UIPanel) Draw(rect rl.Rectangle) {
	if p.Roundness <= 0 {
		rl.DrawRectangleRec(rect, p.Color)
		if p.BorderWidth > 0 {
			rl.DrawRectangleLinesEx(rect, float32(p.BorderWidth), p.BorderColor)
		}
		return
	}
	rl.DrawRectangleRounded(rect, p.Roundness, 8, p.Color)
	if p.BorderWidth > 0 {
		rl.DrawRectangleRoundedLinesEx(rect, p.Roundness, 8, float32(p.BorderWidth), p.BorderColor)
	}
}

func (p *UIPanel) TypeName() string { return "UIPanel" }

func (p *UIPanel) Serialize() map[string]any {
	return map[string]any{
		"color":       colorToAny(p.Color),
		"borderColor": colorToAny(p.BorderColor),
		"borderWidth": p.BorderWidth,
		"roundness":   p.Roundness,
	}
}

func (p *UIPanel) Deserialize(data map[string]any) {
	readColor(data, "color", &p.Color)
	readColor(data, "borderColor", &p.BorderColor)
	readInt32(data, "borderWidth", &p.BorderWidth)
	readFloat32(data, "roundness", &p.Roundness)
}

// UIButton fires OnClick when the pointer is pressed and released inside
// its rect.
type UIButton struct {
	engine.BaseComponent

	Color        rl.Color
	HoverColor   rl.Color
	PressedColor rl.Color
	BorderColor  rl.Color
	Disabled     bool

	OnClick engine.Event

	hovered bool
	armed   bool
}

func NewUIButton() *UIButton {
	return &UIButton{
		Color:        rl.NewColor(55, 55, 68, 255),
		HoverColor:   rl.NewColor(75, 75, 92, 255),
		PressedColor: rl.NewColor(95, 95, 118, 255),
		BorderColor:  rl.NewColor(100, 100, 115, 255),
	}
}

func (b *UIButton) DrawOrder() int { return -5 }

func (b *UIButton) Draw(rect rl.Rectangle) {
	face := b.Color
	switch {
	case b.Disabled:
		face = rl.Fade(b.Color, 0.4)
	case b.armed && b.hovered:
		face = b.PressedColor
	case b.hovered:
		face = b.HoverColor
	}
	rl.DrawRectangleRec(rect, face)
	rl.DrawRectangleLinesEx(rect, 1, b.BorderColor)
}

func (b *UIButton) HandleInput(rect rl.Rectangle, ps PointerState) {
	if b.Disabled {
		b.hovered, b.armed = false, false
		return
	}
	b.hovered = rl.CheckCollisionPointRec(ps.Pos, rect)
	if ps.Pressed && b.hovered {
		b.armed = true
	}
	if ps.Released {
		if b.armed && b.hovered {
			b.OnClick.Invoke()
		}
		b.armed = false
	}
}

func (b *UIButton) TypeName() string { return "UIButton" }

func (b *UIButton) Serialize() map[string]any {
	return map[string]any{
		"color":        colorToAny(b.Color),
		"hoverColor":   colorToAny(b.HoverColor),
		"pressedColor": colorToAny(b.PressedColor),
		"borderColor":  colorToAny(b.BorderColor),
		"disabled":     b.Disabled,
	}
}

func (b *UIButton) Deserialize(data map[string]any) {
	readColor(data, "color", &b.Color)
	readColor(data, "hoverColor", &b.HoverColor)
	readColor(data, "pressedColor", &b.PressedColor)
	readColor(data, "borderColor", &b.BorderColor)
	readBool(data, "disabled", &b.Disabled)
}

func init() {
	engine.RegisterComponent("UIText", func() engine.Serializable { return NewUIText() })
	engine.RegisterComponent("UIPanel", func() engine.Serializable { return NewUIPanel() })
	engine.RegisterComponent("UIButton", func() engine.Serializable { return NewUIButton() })
}
