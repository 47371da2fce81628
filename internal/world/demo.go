package world

import (
	"gridpaint/internal/components"
	"gridpaint/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Names of the objects BuildDemo creates.
const (
	PickerPanelName = "PickerPanel"
	HexInputName    = "HexInput"
)

// Demo holds the objects of the demo scene the runtime needs to reach.
type Demo struct {
	Panel    *engine.GameObject
	HexInput *engine.GameObject
	Preview  *engine.GameObject
}

// BuildDemo adds the default scene to w: a spinning preview cube and a
// controller ray that take the picked colour, and a picker panel with
// plane, hue slider, swatch, hex readout and a hide/show button.
func BuildDemo(w *World) Demo {
	camera := engine.NewGameObject("Camera")
	camera.Transform.Position = rl.Vector3{X: 0, Y: 1.5, Z: -5}
	cam := components.NewCamera()
	cam.IsMain = true
	camera.AddComponent(cam)
	camera.AddComponent(components.NewOrbitController(rl.Vector3{X: 0.5, Y: 1.2, Z: 0}, 5))
	w.Scene.AddGameObject(camera)

	cube := engine.NewGameObject("Preview")
	cube.Transform.Position = rl.Vector3{X: 1, Y: 1.5, Z: 0}
	mesh := components.NewMeshRenderer(components.MeshCube, rl.White, rl.Vector3{X: 1.2, Y: 1.2, Z: 1.2})
	mesh.Wires = true
	cube.AddComponent(mesh)
	cube.AddComponent(&components.Rotator{Speed: 30})
	cube.AddComponent(components.NewMaterialColor())
	w.Scene.AddGameObject(cube)

	controller := engine.NewGameObject("Controller")
	controller.Transform.Position = rl.Vector3{X: 1.5, Y: 0.5, Z: -3}
	controller.Transform.Rotation = rl.Vector3{Y: -20}
	controller.AddComponent(components.NewLineRenderer(4, rl.White))
	controller.AddComponent(&components.LineColor{})
	w.Scene.AddGameObject(controller)

	canvasObj := engine.NewGameObject("Canvas")
	canvasObj.AddComponent(components.NewUICanvas())

	panel := uiObject(PickerPanelName, components.NewRectAt(20, 20, 300, 410))
	panel.AddComponent(components.NewUIPanel())
	canvasObj.AddChild(panel)

	plane := uiObject("SVPlane", components.NewRectAt(20, 20, 260, 260))
	plane.AddComponent(components.NewUIColorPlane())
	panel.AddChild(plane)

	hue := uiObject("HueSlider", components.NewRectAt(20, 292, 260, 20))
	hue.AddComponent(components.NewUIHueSlider())
	panel.AddChild(hue)

	swatch := uiObject("Swatch", components.NewRectAt(20, 324, 60, 36))
	swatch.AddComponent(components.NewUIImage())
	swatch.AddComponent(components.NewMaterialColor())
	panel.AddChild(swatch)

	label := uiObject("HexLabel", components.NewRectAt(92, 324, 188, 36))
	text := components.NewUIText()
	text.Text = ""
	label.AddComponent(text)
	label.AddComponent(components.NewHexText())
	panel.AddChild(label)

	// The runtime draws a text box over this rect.
	hexInput := uiObject(HexInputName, components.NewRectAt(20, 372, 260, 26))
	panel.AddChild(hexInput)

	// Pinned to the bottom-left corner of the window.
	toggle := uiObject("PanelToggle", components.NewRectAnchored(0, 1, 90, -40, 140, 30))
	toggle.AddComponent(components.NewUIButton())
	toggleText := components.NewUIText()
	toggleText.Text = "Hide / Show"
	toggleText.FontSize = 16
	toggleText.Alignment = components.TextAlignCenter
	toggle.AddComponent(toggleText)
	pt := &components.PanelToggle{}
	pt.Target.Set(panel)
	toggle.AddComponent(pt)
	canvasObj.AddChild(toggle)

	w.Scene.AddGameObject(canvasObj)

	return Demo{Panel: panel, HexInput: hexInput, Preview: cube}
}

func uiObject(name string, rt *components.RectTransform) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.AddComponent(rt)
	return g
}

// FindDemo locates the demo objects in a scene loaded from a file.
func FindDemo(scene *engine.Scene) Demo {
	return Demo{
		Panel:    scene.FindByName(PickerPanelName),
		HexInput: scene.FindByName(HexInputName),
		Preview:  scene.FindByName("Preview"),
	}
}
