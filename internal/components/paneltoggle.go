package components

import (
	"gridpaint/internal/engine"
)

// PanelToggle shows or hides Target whenever the UIButton on the same
// object is clicked.
type PanelToggle struct {
	engine.BaseComponent

	Target engine.GameObjectRef

	button   *UIButton
	listener engine.ListenerID
}

func (p *PanelToggle) Start() {
	p.button = engine.GetComponent[*UIButton](p.GetGameObject())
	if p.button != nil {
		p.listener = p.button.OnClick.AddListener(p.Toggle)
	}
}

// Toggle flips the active flag of the target. A dangling target is
// ignored.
func (p *PanelToggle) Toggle() {
	g := p.GetGameObject()
	if g == nil {
		return
	}
	if t := p.Target.Get(g.Scene); t != nil {
		t.SetActive(!t.Active)
	}
}

func (p *PanelToggle) OnDestroy() {
	if p.button != nil {
		p.button.OnClick.RemoveListener(p.listener)
		p.button = nil
	}
}
