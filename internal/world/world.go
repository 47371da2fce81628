package world

import (
	"sort"

	"gridpaint/internal/components"
	"gridpaint/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World owns the scene and the services its components are bound to.
type World struct {
	Scene    *engine.Scene
	Services components.Services

	bindID engine.ListenerID
}

func New(services components.Services) *World {
	w := &World{
		Scene:    engine.NewScene("Main"),
		Services: services,
	}
	w.bindID = components.BindAll(w.Scene, services)
	return w
}

// Start starts the scene and republishes the current colour so every
// consumer shows it from the first frame.
func (w *World) Start() {
	w.Scene.Start()
	if w.Services.Picker != nil {
		w.Services.Picker.Announce()
	}
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// MainCamera returns the first camera flagged IsMain, or the first camera
// found.
func (w *World) MainCamera() *components.Camera {
	var first *components.Camera
	for _, g := range w.Scene.GameObjects {
		cam := engine.GetComponent[*components.Camera](g)
		if cam == nil {
			continue
		}
		if cam.IsMain {
			return cam
		}
		if first == nil {
			first = cam
		}
	}
	return first
}

// Canvases returns the UI canvases in the scene, lowest SortOrder first.
func (w *World) Canvases() []*components.UICanvas {
	var out []*components.UICanvas
	for _, g := range w.Scene.GameObjects {
		if c := engine.GetComponent[*components.UICanvas](g); c != nil && g.ActiveInHierarchy() {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// Draw renders the 3D preview through the main camera, then the UI.
func (w *World) Draw() {
	if cam := w.MainCamera(); cam != nil {
		rl.BeginMode3D(cam.GetRaylibCamera())
		w.drawScene()
		rl.EndMode3D()
	}
	for _, c := range w.Canvases() {
		c.Draw()
	}
}

func (w *World) drawScene() {
	rl.DrawGrid(10, 1)
	for _, g := range w.Scene.GameObjects {
		if !g.ActiveInHierarchy() {
			continue
		}
		if mr := engine.GetComponent[*components.MeshRenderer](g); mr != nil {
			mr.Draw()
		}
		if lr := engine.GetComponent[*components.LineRenderer](g); lr != nil {
			lr.Draw()
		}
	}
}

// Close destroys every object, releasing textures and bus subscriptions.
func (w *World) Close() {
	w.Scene.OnObjectAdded.RemoveListener(w.bindID)
	for _, g := range w.Scene.Roots() {
		g.Destroy()
	}
}
