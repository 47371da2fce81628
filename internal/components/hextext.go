package components

import (
	"gridpaint/internal/colorpick"
	"gridpaint/internal/engine"
)

// HexText writes the selected colour as #RRGGBB into the UIText on the
// same object. Objects without a UIText are skipped.
type HexText struct {
	engine.BaseComponent
	busBinding

	Prefix string
}

func NewHexText() *HexText {
	return &HexText{}
}

func (h *HexText) Start() {
	listen(&h.busBinding, h, (*HexText).apply)
}

func (h *HexText) apply(c colorpick.Change) {
	text := engine.GetComponent[*UIText](h.GetGameObject())
	if text == nil {
		return
	}
	text.Text = h.Prefix + c.Hex
}
