package components

import (
	"sort"

	"gridpaint/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIDrawer is implemented by components that render inside their
// RectTransform.
type UIDrawer interface {
	Draw(rect rl.Rectangle)
}

// UIInputHandler is implemented by components that react to the pointer.
type UIInputHandler interface {
	HandleInput(rect rl.Rectangle, ps PointerState)
}

// UIDrawOrder lets a drawer ask to be drawn before (lower) or after
// (higher) the other drawers on the same object. The default is 0.
type UIDrawOrder interface {
	DrawOrder() int
}

// UICanvas is the root of a UI tree. Children without a RectTransform
// share their parent's rect; inactive subtrees are neither drawn nor
// hit-tested.
type UICanvas struct {
	engine.BaseComponent

	SortOrder int // higher canvases draw on top

	// ScreenSize overrides the window size as the root rect when non-zero.
	ScreenSize rl.Vector2
}

func NewUICanvas() *UICanvas {
	return &UICanvas{}
}

func (c *UICanvas) rootRect() rl.Rectangle {
	if c.ScreenSize.X > 0 && c.ScreenSize.Y > 0 {
		return rl.Rectangle{Width: c.ScreenSize.X, Height: c.ScreenSize.Y}
	}
	return rl.Rectangle{Width: float32(rl.GetScreenWidth()), Height: float32(rl.GetScreenHeight())}
}

// walk lays out the active tree under the canvas depth first and calls
// visit for each object with its resolved rect. hidden, if set, gets the
// root of every inactive subtree.
func (c *UICanvas) walk(visit func(g *engine.GameObject, rect rl.Rectangle), hidden func(g *engine.GameObject)) {
	var rec func(g *engine.GameObject, parent rl.Rectangle)
	rec = func(g *engine.GameObject, parent rl.Rectangle) {
		if !g.Active {
			if hidden != nil {
				hidden(g)
			}
			return
		}
		rect := parent
		if rt := engine.GetComponent[*RectTransform](g); rt != nil {
			rt.CalculateRect(parent)
			rect = rt.GetScreenRect()
		}
		visit(g, rect)
		for _, child := range g.Children {
			rec(child, rect)
		}
	}
	if g := c.GetGameObject(); g != nil {
		rec(g, c.rootRect())
	}
}

func (c *UICanvas) Draw() {
	c.walk(func(g *engine.GameObject, rect rl.Rectangle) {
		for _, d := range drawers(g) {
			d.Draw(rect)
		}
	}, nil)
}

func drawers(g *engine.GameObject) []UIDrawer {
	var out []UIDrawer
	for _, comp := range g.Components() {
		if d, ok := comp.(UIDrawer); ok {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return drawOrder(out[i]) < drawOrder(out[j])
	})
	return out
}

func drawOrder(d UIDrawer) int {
	if o, ok := d.(UIDrawOrder); ok {
		return o.DrawOrder()
	}
	return 0
}

func (c *UICanvas) Update(deltaTime float32) {
	c.Dispatch(ReadPointer())
}

// Dispatch lays the tree out and feeds ps to every input handler under the
// canvas. Handlers in hidden subtrees get CancelInput instead.
func (c *UICanvas) Dispatch(ps PointerState) {
	c.walk(func(g *engine.GameObject, rect rl.Rectangle) {
		for _, comp := range g.Components() {
			if h, ok := comp.(UIInputHandler); ok {
				h.HandleInput(rect, ps)
			}
		}
	}, cancelInput)
}

func cancelInput(g *engine.GameObject) {
	for _, comp := range g.Components() {
		if c, ok := comp.(UIInputCanceler); ok {
			c.CancelInput()
		}
	}
	for _, child := range g.Children {
		cancelInput(child)
	}
}

func (c *UICanvas) TypeName() string { return "UICanvas" }

func (c *UICanvas) Serialize() map[string]any {
	return map[string]any{"sortOrder": c.SortOrder}
}

func (c *UICanvas) Deserialize(data map[string]any) {
	var order int32
	readInt32(data, "sortOrder", &order)
	c.SortOrder = int(order)
}

func init() {
	engine.RegisterComponent("UICanvas", func() engine.Serializable { return NewUICanvas() })
}
