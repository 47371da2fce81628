package colorpick

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

type swatch struct {
	name string
	got  []string
}

func TestBusSubscribeFunc(t *testing.T) {
	bus := NewBus()
	var a, b []string
	subA := bus.SubscribeFunc(func(c Change) { a = append(a, c.Hex) })
	bus.SubscribeFunc(func(c Change) { b = append(b, c.Hex) })
	require.Equal(t, 2, bus.Len())

	bus.Publish(NewChange(HSV{H: 0, S: 1, V: 1}))
	require.Equal(t, []string{"#FF0000"}, a)
	require.Equal(t, []string{"#FF0000"}, b)

	subA.Unsubscribe()
	subA.Unsubscribe()
	require.False(t, subA.Active())
	require.Equal(t, 1, bus.Len())

	bus.Publish(NewChange(HSV{H: 0, S: 0, V: 1}))
	require.Len(t, a, 1)
	require.Equal(t, []string{"#FF0000", "#FFFFFF"}, b)
}

func TestBusNilCallbacks(t *testing.T) {
	bus := NewBus()
	require.False(t, bus.SubscribeFunc(nil).Active())
	require.False(t, Subscribe[swatch](bus, nil, func(*swatch, Change) {}).Active())
	require.Zero(t, bus.Len())
	Subscription{}.Unsubscribe()
}

func TestBusOwnerReceivesChanges(t *testing.T) {
	bus := NewBus()
	owner := &swatch{name: "line"}
	sub := Subscribe(bus, owner, func(s *swatch, c Change) {
		s.got = append(s.got, c.Hex)
	})
	require.True(t, sub.Active())

	bus.Publish(NewChange(HSV{H: 0, S: 1, V: 1}))
	require.Equal(t, []string{"#FF0000"}, owner.got)
	runtime.KeepAlive(owner)
}

func TestBusDoesNotKeepOwnersAlive(t *testing.T) {
	bus := NewBus()
	func() {
		owner := &swatch{name: "material"}
		Subscribe(bus, owner, func(s *swatch, c Change) { s.got = append(s.got, c.Hex) })
	}()
	require.Equal(t, 1, bus.Len())

	for i := 0; i < 5 && bus.Len() > 0; i++ {
		runtime.GC()
		bus.Publish(NewChange(HSV{H: 0.5, S: 1, V: 1}))
	}
	require.Zero(t, bus.Len())
}

func TestBusCallbackMayUnsubscribe(t *testing.T) {
	bus := NewBus()
	var sub Subscription
	n := 0
	sub = bus.SubscribeFunc(func(Change) {
		n++
		sub.Unsubscribe()
	})

	bus.Publish(NewChange(HSV{}))
	bus.Publish(NewChange(HSV{}))
	require.Equal(t, 1, n)
	require.Zero(t, bus.Len())
}

func TestBusDropsOutdatedChanges(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.SubscribeFunc(func(c Change) { got = append(got, c.Hex) })

	newer := NewChange(HSV{H: 0, S: 1, V: 1})
	newer.Seq = 5
	older := NewChange(HSV{H: 0.5, S: 1, V: 1})
	older.Seq = 3
	unsequenced := NewChange(HSV{V: 1})

	bus.Publish(newer)
	bus.Publish(older)
	bus.Publish(newer)
	bus.Publish(unsequenced)
	require.Equal(t, []string{"#FF0000", "#FF0000", "#FFFFFF"}, got)
}
