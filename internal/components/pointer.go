package components

import (
	"gridpaint/internal/colorpick"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PointerState is one frame of mouse input as seen by UI elements.
type PointerState struct {
	Pos      rl.Vector2
	Pressed  bool // went down this frame
	Down     bool
	Released bool // went up this frame
}

// ReadPointer samples the left mouse button.
func ReadPointer() PointerState {
	return PointerState{
		Pos:      rl.GetMousePosition(),
		Pressed:  rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Down:     rl.IsMouseButtonDown(rl.MouseLeftButton),
		Released: rl.IsMouseButtonReleased(rl.MouseLeftButton),
	}
}

// toPickerSpace converts a y-down screen rectangle and pointer into the
// y-up space colorpick works in, so the bottom edge of rect is value 0.
func toPickerSpace(rect rl.Rectangle, pos rl.Vector2) (colorpick.Point, colorpick.Rect) {
	p := colorpick.Point{X: float64(pos.X), Y: -float64(pos.Y)}
	r := colorpick.Rect{
		X:      float64(rect.X),
		Y:      -float64(rect.Y + rect.Height),
		Width:  float64(rect.Width),
		Height: float64(rect.Height),
	}
	return p, r
}

// dragTracker implements press-inside / drag-anywhere / release semantics
// shared by the picker widgets.
type dragTracker struct {
	dragging bool
}

type dragPhase int

const (
	dragIdle    dragPhase = iota
	dragMove              // apply the pointer
	dragRelease           // apply the pointer, then commit
	dragLost              // the button came up unseen; commit without applying
)

// update advances the drag by one frame of input.
func (d *dragTracker) update(rect rl.Rectangle, ps PointerState) dragPhase {
	if ps.Pressed && rl.CheckCollisionPointRec(ps.Pos, rect) {
		d.dragging = true
	}
	if !d.dragging {
		return dragIdle
	}
	switch {
	case ps.Released:
		d.dragging = false
		return dragRelease
	case !ps.Down:
		d.dragging = false
		return dragLost
	}
	return dragMove
}

// cancel ends a drag without a final pointer event and reports whether one
// was in progress.
func (d *dragTracker) cancel() bool {
	was := d.dragging
	d.dragging = false
	return was
}

// UIInputCanceler is implemented by input handlers that hold state across
// frames. The canvas calls CancelInput when the handler's object is hidden.
type UIInputCanceler interface {
	CancelInput()
}
