package components

import (
	"gridpaint/internal/colorpick"
	"gridpaint/internal/engine"
)

// MaterialColor tints a MeshRenderer or UIImage with the selected colour.
// Target defaults to the object the component is attached to.
type MaterialColor struct {
	engine.BaseComponent
	busBinding

	Target engine.GameObjectRef
}

func NewMaterialColor() *MaterialColor {
	return &MaterialColor{}
}

func (m *MaterialColor) Start() {
	listen(&m.busBinding, m, (*MaterialColor).apply)
}

func (m *MaterialColor) target() *engine.GameObject {
	g := m.GetGameObject()
	if g == nil {
		return nil
	}
	if m.Target.IsValid() {
		return m.Target.Get(g.Scene)
	}
	return g
}

func (m *MaterialColor) apply(c colorpick.Change) {
	g := m.target()
	if g == nil {
		return
	}
	if mr := engine.GetComponent[*MeshRenderer](g); mr != nil {
		mr.Color = c.Color
		return
	}
	if img := engine.GetComponent[*UIImage](g); img != nil {
		img.Color = c.Color
		img.Tint = c.Color
	}
}
