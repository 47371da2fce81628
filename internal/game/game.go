package game

import (
	"errors"
	"fmt"
	"strings"

	"gridpaint/internal/colorpick"
	"gridpaint/internal/components"
	"gridpaint/internal/engine"
	"gridpaint/internal/logx"
	"gridpaint/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const hexBoxSize = 10

type Game struct {
	Config    Config
	World     *world.World
	Picker    *colorpick.Picker
	ScenePath string

	demo world.Demo

	hexText    string
	hexEditing bool
	status     string
	hexSub     colorpick.Subscription
}

// New builds the picker and the scene. With an empty scenePath the demo
// scene is built in code. No window is needed until Run.
func New(cfg Config, scenePath string) (*Game, error) {
	bus := colorpick.NewBus()
	picker := colorpick.New(bus, colorpick.WithConfig(cfg.Picker))
	w := world.New(components.Services{Bus: bus, Picker: picker})

	g := &Game{Config: cfg, World: w, Picker: picker, ScenePath: scenePath}
	if scenePath != "" {
		if err := w.LoadScene(scenePath); err != nil {
			w.Close()
			return nil, err
		}
		g.demo = world.FindDemo(w.Scene)
	} else {
		g.demo = world.BuildDemo(w)
	}

	g.hexText = picker.Hex()
	g.hexSub = bus.SubscribeFunc(func(c colorpick.Change) {
		if !g.hexEditing {
			g.hexText = c.Hex
		}
	})
	w.Start()
	return g, nil
}

func (g *Game) Run() error {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return errors.New("game: window could not be created")
	}
	rl.SetTargetFPS(int32(win.FPS))
	initRayguiStyle()

	// Textures belong to the GL context, release them before it goes.
	defer g.Close()

	logx.Logger().Info("game: running", "width", win.Width, "height", win.Height)
	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) Close() {
	g.hexSub.Unsubscribe()
	g.World.Close()
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()
	if !g.hexEditing {
		g.handleShortcuts()
	}
	g.World.Update(deltaTime)
}

func (g *Game) handleShortcuts() {
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	switch {
	case ctrl && rl.IsKeyPressed(rl.KeyZ):
		g.Undo()
	case ctrl && rl.IsKeyPressed(rl.KeyY):
		g.Redo()
	case ctrl && rl.IsKeyPressed(rl.KeyS):
		g.Save()
	case rl.IsKeyPressed(rl.KeyH):
		g.TogglePanel()
	}
}

func (g *Game) Undo() {
	if !g.Picker.Undo() {
		g.status = "nothing to undo"
		return
	}
	g.status = "undo"
}

func (g *Game) Redo() {
	if !g.Picker.Redo() {
		g.status = "nothing to redo"
		return
	}
	g.status = "redo"
}

// TogglePanel shows or hides the picker panel.
func (g *Game) TogglePanel() {
	if g.demo.Panel == nil {
		return
	}
	g.demo.Panel.SetActive(!g.demo.Panel.Active)
	g.hexEditing = false
}

// SubmitHex applies text typed into the hex box. Invalid text leaves the
// colour untouched and restores the box.
func (g *Game) SubmitHex(text string) {
	text = strings.TrimSpace(text)
	if err := g.Picker.SetHex(text); err != nil {
		if err := g.Picker.SetNamed(text); err != nil {
			logx.Logger().Warn("game: ignoring colour input", "text", text)
			g.status = fmt.Sprintf("not a colour: %q", text)
			g.hexText = g.Picker.Hex()
			return
		}
	}
	g.Picker.Commit()
	g.hexText = g.Picker.Hex()
	g.status = "set " + g.hexText
}

func (g *Game) Save() {
	path := g.ScenePath
	if path == "" {
		path = "scene.json"
	}
	if err := g.World.SaveScene(path); err != nil {
		logx.Logger().Warn("game: save failed", "err", err)
		g.status = "save failed"
		return
	}
	g.status = "saved " + path
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	g.World.Draw()
	g.drawHexBox()
	g.drawStatus()

	rl.EndDrawing()
}

func (g *Game) drawHexBox() {
	in := g.demo.HexInput
	if in == nil || !in.ActiveInHierarchy() {
		return
	}
	rt := engine.GetComponent[*components.RectTransform](in)
	if rt == nil {
		return
	}
	if gui.TextBox(rt.GetScreenRect(), &g.hexText, hexBoxSize, g.hexEditing) {
		g.hexEditing = !g.hexEditing
		if !g.hexEditing {
			g.SubmitHex(g.hexText)
		}
	}
}

func (g *Game) drawStatus() {
	h := float32(rl.GetScreenHeight())
	w := float32(rl.GetScreenWidth())
	hsv := g.Picker.HSV()
	undo, redo := g.Picker.HistoryLen()
	text := fmt.Sprintf("%s  H %.0f°  S %.0f%%  V %.0f%%  undo %d / redo %d  [H] panel  [Ctrl+Z/Y] history  %s",
		g.Picker.Hex(), hsv.H*360, hsv.S*100, hsv.V*100, undo, redo, g.status)
	gui.StatusBar(rl.Rectangle{X: 0, Y: h - 24, Width: w, Height: 24}, text)
}
