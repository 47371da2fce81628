package colorpick

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"gridpaint/internal/logx"
)

// Option configures a Picker during construction.
type Option func(*Picker)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(p *Picker) {
		p.cfg = cfg.normalized()
	}
}

// WithInitial overrides Config.Default as the starting colour.
func WithInitial(hsv HSV) Option {
	return func(p *Picker) {
		p.initial = &hsv
	}
}

// State is a consistent view of the picker: the plane bitmap always belongs
// to HSV.H.
type State struct {
	HSV          HSV
	Color        color.RGBA
	Hex          string
	Plane        *image.RGBA
	PlaneVersion uint64
}

// Picker holds the HSV selection, the two gradient bitmaps and the undo
// history, and publishes every change on its Bus.
//
// Selection state and plane bitmap are changed together under one lock:
// a reader never sees a new hue with a plane rendered for the old one.
type Picker struct {
	mu sync.RWMutex

	cfg     Config
	initial *HSV
	bus     *Bus

	hsv          HSV
	hueTrack     *image.RGBA
	plane        *image.RGBA
	planeHue     float64
	planeVersion uint64
	seq          uint64 // bumped on every state change

	undo []HSV
	redo []HSV
	// committed is the state the last history step was recorded from.
	committed HSV
}

// New builds a picker publishing on bus. A nil bus gets a private one.
func New(bus *Bus, opts ...Option) *Picker {
	if bus == nil {
		bus = NewBus()
	}
	p := &Picker{cfg: DefaultConfig(), bus: bus}
	for _, opt := range opts {
		opt(p)
	}

	p.hsv = p.cfg.Default
	if p.initial != nil {
		p.hsv = p.initial.Clamped()
	}
	p.committed = p.hsv
	p.hueTrack = HueTrack(p.cfg.HueTrackWidth, p.cfg.HueTrackHeight)
	p.plane = SVPlane(p.hsv.H, p.cfg.PlaneWidth, p.cfg.PlaneHeight)
	p.planeHue = p.hsv.H
	p.planeVersion = 1

	logx.Logger().Info("colorpick: picker created",
		"hsv", p.hsv.String(),
		"plane", fmt.Sprintf("%dx%d", p.cfg.PlaneWidth, p.cfg.PlaneHeight))
	return p
}

func (p *Picker) Bus() *Bus { return p.bus }

func (p *Picker) Config() Config { return p.cfg }

// update moves the selection to edit(current), regenerating the plane if
// the hue moved, and publishes. It reports whether anything changed.
func (p *Picker) update(edit func(HSV) HSV) bool {
	p.mu.Lock()
	next := edit(p.hsv).Clamped()
	if next == p.hsv {
		p.mu.Unlock()
		return false
	}
	p.setLocked(next)
	c := p.changeLocked()
	p.mu.Unlock()

	p.bus.Publish(c)
	return true
}

// changeLocked builds the bus payload for the current state.
func (p *Picker) changeLocked() Change {
	c := NewChange(p.hsv)
	c.Seq = p.seq
	return c
}

func (p *Picker) setLocked(next HSV) {
	p.hsv = next
	p.seq++
	if next.H != p.planeHue {
		// Rendered into a fresh image: snapshots taken earlier keep the
		// bitmap that matches their hue.
		p.plane = SVPlane(next.H, p.cfg.PlaneWidth, p.cfg.PlaneHeight)
		p.planeHue = next.H
		p.planeVersion++
		logx.Logger().Debug("colorpick: plane regenerated", "hue", next.H, "version", p.planeVersion)
	}
}

// SetHue handles a hue slider change.
func (p *Picker) SetHue(h float64) bool {
	return p.update(func(cur HSV) HSV {
		cur.H = h
		return cur
	})
}

// SetSaturationValue handles a plane selection.
func (p *Picker) SetSaturationValue(s, v float64) bool {
	return p.update(func(cur HSV) HSV {
		cur.S, cur.V = s, v
		return cur
	})
}

// Pointer maps a pointer inside (or dragged beyond) the plane rectangle to
// saturation and value.
func (p *Picker) Pointer(pt Point, r Rect) bool {
	s, v := MapPointer(pt, r)
	return p.SetSaturationValue(s, v)
}

// HuePointer maps a pointer position along the hue track to a hue.
func (p *Picker) HuePointer(x, left, width float64) bool {
	return p.SetHue(MapHue(x, left, width))
}

// SetHSV sets an absolute HSV colour. Like SetColor, a grey keeps the
// current hue and black keeps the current hue and saturation.
func (p *Picker) SetHSV(hsv HSV) bool {
	return p.update(func(cur HSV) HSV {
		return keepUndefined(hsv.Clamped(), cur)
	})
}

// SetColor sets an absolute RGB colour. Where hue or saturation is
// undefined for c, the current one is kept. Setting the colour that is
// already displayed is a no-op.
func (p *Picker) SetColor(c color.Color) bool {
	want := color.RGBAModel.Convert(c).(color.RGBA)
	want.A = 255
	return p.update(func(cur HSV) HSV {
		if cur.RGB() == want {
			return cur
		}
		return FromRGB(want, cur)
	})
}

// SetHex parses s and selects it. On error the selection is unchanged.
func (p *Picker) SetHex(s string) error {
	c, err := ParseHex(s)
	if err != nil {
		return err
	}
	p.SetColor(c)
	return nil
}

// SetNamed selects an SVG colour keyword.
func (p *Picker) SetNamed(name string) error {
	c, err := Named(name)
	if err != nil {
		return err
	}
	p.SetColor(c)
	return nil
}

func (p *Picker) HSV() HSV {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.hsv
}

func (p *Picker) Color() color.RGBA {
	return p.HSV().RGB()
}

func (p *Picker) Hex() string {
	return Hex(p.Color())
}

// HueTrack returns the hue gradient. It is generated once and never
// modified.
func (p *Picker) HueTrack() *image.RGBA {
	return p.hueTrack
}

// Plane returns the current saturation/value bitmap. The returned image is
// never modified afterwards; a hue change swaps in a new one.
func (p *Picker) Plane() *image.RGBA {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.plane
}

// PlaneVersion increases every time the plane is regenerated.
func (p *Picker) PlaneVersion() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.planeVersion
}

// Snapshot returns selection and plane as one consistent unit.
func (p *Picker) Snapshot() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c := p.hsv.RGB()
	return State{
		HSV:          p.hsv,
		Color:        c,
		Hex:          Hex(c),
		Plane:        p.plane,
		PlaneVersion: p.planeVersion,
	}
}

// Announce republishes the current colour, for consumers attached after
// the last change.
func (p *Picker) Announce() {
	p.mu.RLock()
	c := p.changeLocked()
	p.mu.RUnlock()
	p.bus.Publish(c)
}
