package components

import (
	"gridpaint/internal/engine"
)

func init() {
	engine.RegisterScript("Rotator", rotatorFactory, rotatorSerializer)
	engine.RegisterScriptWithMetadata("PanelToggle", panelToggleFactory, panelToggleSerializer,
		panelToggleApplier, map[string]string{"target": "GameObjectRef"})
	engine.RegisterScript("HexText", hexTextFactory, hexTextSerializer)
	engine.RegisterScriptWithMetadata("MaterialColor", materialColorFactory, materialColorSerializer,
		materialColorApplier, map[string]string{"target": "GameObjectRef"})
	engine.RegisterScript("LineColor", lineColorFactory, lineColorSerializer)
}

func refFrom(v any) (engine.GameObjectRef, bool) {
	f, ok := v.(float64)
	if !ok || f < 0 {
		return engine.GameObjectRef{}, false
	}
	return engine.GameObjectRef{UID: uint64(f)}, true
}

// Rotator is a simple script that spins an object around the Y axis.
type Rotator struct {
	engine.BaseComponent
	Speed float32
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Rotation.Y += r.Speed * deltaTime
	if g.Transform.Rotation.Y > 360 {
		g.Transform.Rotation.Y -= 360
	}
}

func rotatorFactory(props map[string]any) engine.Component {
	speed := float32(90)
	if v, ok := props["speed"].(float64); ok {
		speed = float32(v)
	}
	return &Rotator{Speed: speed}
}

func rotatorSerializer(c engine.Component) map[string]any {
	r, ok := c.(*Rotator)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": r.Speed,
	}
}

func panelToggleFactory(props map[string]any) engine.Component {
	p := &PanelToggle{}
	if ref, ok := refFrom(props["target"]); ok {
		p.Target = ref
	}
	return p
}

func panelToggleSerializer(c engine.Component) map[string]any {
	p, ok := c.(*PanelToggle)
	if !ok {
		return nil
	}
	return map[string]any{"target": p.Target.UID}
}

func panelToggleApplier(c engine.Component, propName string, value any) bool {
	p, ok := c.(*PanelToggle)
	if !ok || propName != "target" {
		return false
	}
	ref, ok := refFrom(value)
	if !ok {
		return false
	}
	p.Target = ref
	return true
}

func hexTextFactory(props map[string]any) engine.Component {
	h := NewHexText()
	if v, ok := props["prefix"].(string); ok {
		h.Prefix = v
	}
	return h
}

func hexTextSerializer(c engine.Component) map[string]any {
	h, ok := c.(*HexText)
	if !ok {
		return nil
	}
	return map[string]any{"prefix": h.Prefix}
}

func materialColorFactory(props map[string]any) engine.Component {
	m := NewMaterialColor()
	if ref, ok := refFrom(props["target"]); ok {
		m.Target = ref
	}
	return m
}

func materialColorSerializer(c engine.Component) map[string]any {
	m, ok := c.(*MaterialColor)
	if !ok {
		return nil
	}
	return map[string]any{"target": m.Target.UID}
}

func materialColorApplier(c engine.Component, propName string, value any) bool {
	m, ok := c.(*MaterialColor)
	if !ok || propName != "target" {
		return false
	}
	ref, ok := refFrom(value)
	if !ok {
		return false
	}
	m.Target = ref
	return true
}

func lineColorFactory(map[string]any) engine.Component {
	return &LineColor{}
}

func lineColorSerializer(c engine.Component) map[string]any {
	if _, ok := c.(*LineColor); !ok {
		return nil
	}
	return map[string]any{}
}
