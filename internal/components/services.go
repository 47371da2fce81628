package components

import (
	"fmt"

	"gridpaint/internal/colorpick"
	"gridpaint/internal/engine"
	"gridpaint/internal/logx"
)

// Services are the shared objects picker-bound components are wired to.
// They are handed over explicitly by whoever builds the scene; components
// never look them up by name.
type Services struct {
	Bus    *colorpick.Bus
	Picker *colorpick.Picker
}

// ServiceBinder is implemented by components that need Services.
type ServiceBinder interface {
	BindServices(s Services)
}

// BindAll hands s to every ServiceBinder in the scene, and to those added
// later through Scene.OnObjectAdded. Call it before Scene.Start.
func BindAll(scene *engine.Scene, s Services) engine.ListenerID {
	for _, g := range scene.GameObjects {
		bindObject(g, s)
	}
	return scene.OnObjectAdded.AddListener(func(g *engine.GameObject) {
		bindObject(g, s)
	})
}

func bindObject(g *engine.GameObject, s Services) {
	for _, c := range g.Components() {
		if b, ok := c.(ServiceBinder); ok {
			b.BindServices(s)
		}
	}
}

// busBinding is embedded by colour consumers. It keeps the subscription so
// OnDestroy can detach it.
type busBinding struct {
	Bus *colorpick.Bus
	sub colorpick.Subscription
}

func (b *busBinding) BindServices(s Services) {
	if s.Bus != nil {
		b.Bus = s.Bus
	} else if s.Picker != nil {
		b.Bus = s.Picker.Bus()
	}
}

// Subscribed reports whether the consumer is currently attached to a bus.
func (b *busBinding) Subscribed() bool {
	return b.sub.Active()
}

func (b *busBinding) OnDestroy() {
	b.sub.Unsubscribe()
	b.sub = colorpick.Subscription{}
}

// listen attaches fn for owner, replacing any earlier subscription.
func listen[T any](b *busBinding, owner *T, fn func(*T, colorpick.Change)) {
	b.sub.Unsubscribe()
	if b.Bus == nil {
		logx.Logger().Debug("components: consumer has no bus", "type", fmt.Sprintf("%T", owner))
		return
	}
	b.sub = colorpick.Subscribe(b.Bus, owner, fn)
}
