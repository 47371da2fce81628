package colorpick

import (
	"image/color"
	"sync"
	"sync/atomic"
	"weak"

	"gridpaint/internal/logx"
)

// Change is delivered to bus subscribers whenever the selected colour
// changes.
type Change struct {
	HSV   HSV
	Color color.RGBA
	Hex   string
	// Seq is the picker state sequence the change was taken from. Zero
	// means unsequenced.
	Seq uint64
}

// NewChange derives the RGB and hex forms of hsv.
func NewChange(hsv HSV) Change {
	c := hsv.RGB()
	return Change{HSV: hsv, Color: c, Hex: Hex(c)}
}

// deliver returns false once the subscriber is gone and should be pruned.
type deliver func(Change) bool

// ordered drops sequenced changes older than the newest one d has accepted,
// so a publish delayed behind a later one does not overwrite it.
func ordered(d deliver) deliver {
	var newest atomic.Uint64
	return func(c Change) bool {
		for c.Seq != 0 {
			prev := newest.Load()
			if c.Seq < prev {
				return true
			}
			if newest.CompareAndSwap(prev, c.Seq) {
				break
			}
		}
		return d(c)
	}
}

// Bus fans colour changes out to any number of subscribers. Delivery order
// between subscribers is unspecified. A subscriber never receives a
// sequenced change older than one it already received; callbacks from
// concurrent publishers may still overlap, so with more than one writer a
// consumer that needs the settled value reads Picker.Snapshot. Owner-bound subscriptions hold their
// owner weakly, so a consumer that is dropped elsewhere is not kept alive by
// the bus and is pruned on the next publish.
type Bus struct {
	mu     sync.Mutex
	subs   map[uint64]deliver
	lastID uint64
}

func NewBus() *Bus {
	return &Bus{subs: make(map[uint64]deliver)}
}

// Subscription identifies one subscriber on a Bus.
type Subscription struct {
	bus *Bus
	id  uint64
}

// Unsubscribe detaches the subscriber. Calling it more than once, or on the
// zero Subscription, is a no-op.
func (s Subscription) Unsubscribe() {
	if s.bus == nil {
		return
	}
	s.bus.mu.Lock()
	delete(s.bus.subs, s.id)
	s.bus.mu.Unlock()
}

// Active reports whether the subscription is still attached.
func (s Subscription) Active() bool {
	if s.bus == nil {
		return false
	}
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	_, ok := s.bus.subs[s.id]
	return ok
}

func (b *Bus) add(d deliver) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastID++
	b.subs[b.lastID] = ordered(d)
	return Subscription{bus: b, id: b.lastID}
}

// SubscribeFunc attaches fn. The bus holds fn strongly; callers detach with
// Unsubscribe.
func (b *Bus) SubscribeFunc(fn func(Change)) Subscription {
	if fn == nil {
		return Subscription{}
	}
	return b.add(func(c Change) bool {
		fn(c)
		return true
	})
}

// Subscribe attaches fn on behalf of owner. The bus only keeps a weak
// reference to owner; fn must not capture owner itself, it receives it as
// its first argument.
func Subscribe[T any](b *Bus, owner *T, fn func(*T, Change)) Subscription {
	if owner == nil || fn == nil {
		return Subscription{}
	}
	wp := weak.Make(owner)
	return b.add(func(c Change) bool {
		o := wp.Value()
		if o == nil {
			return false
		}
		fn(o, c)
		return true
	})
}

// Publish delivers c to every live subscriber. Callbacks run without the
// bus lock held, so they may subscribe or unsubscribe.
func (b *Bus) Publish(c Change) {
	b.mu.Lock()
	ids := make([]uint64, 0, len(b.subs))
	fns := make([]deliver, 0, len(b.subs))
	for id, d := range b.subs {
		ids = append(ids, id)
		fns = append(fns, d)
	}
	b.mu.Unlock()

	var dead []uint64
	for i, d := range fns {
		if !d(c) {
			dead = append(dead, ids[i])
		}
	}
	if len(dead) == 0 {
		return
	}

	b.mu.Lock()
	for _, id := range dead {
		delete(b.subs, id)
	}
	b.mu.Unlock()
	logx.Logger().Debug("colorpick: pruned collected subscribers", "count", len(dead))
}

// Len returns the number of attached subscribers, including owner-bound
// ones whose owner has been collected but not yet pruned.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
