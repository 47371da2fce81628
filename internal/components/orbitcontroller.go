package components

import (
	"gridpaint/internal/camera"
	"gridpaint/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitController lets the right mouse button orbit the camera on its
// object around a target, and the wheel zoom.
type OrbitController struct {
	engine.BaseComponent
	Orbit *camera.Orbit
}

func NewOrbitController(target rl.Vector3, distance float32) *OrbitController {
	return &OrbitController{Orbit: camera.New(target, distance)}
}

func (o *OrbitController) Start() {
	o.sync()
}

func (o *OrbitController) Update(deltaTime float32) {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		d := rl.GetMouseDelta()
		o.Orbit.Rotate(d.X, d.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		o.Orbit.Zoom(wheel * 0.5)
	}
	o.sync()
}

// sync keeps the object transform at the orbit position.
func (o *OrbitController) sync() {
	if g := o.GetGameObject(); g != nil {
		g.Transform.Position = o.Orbit.Position()
	}
}

func (o *OrbitController) TypeName() string { return "OrbitController" }

func (o *OrbitController) Serialize() map[string]any {
	t := o.Orbit.Target
	return map[string]any{
		"target":   []float32{t.X, t.Y, t.Z},
		"distance": o.Orbit.Distance,
		"yaw":      o.Orbit.Yaw,
		"pitch":    o.Orbit.Pitch,
	}
}

func (o *OrbitController) Deserialize(data map[string]any) {
	if v, ok := data["target"].([]any); ok && len(v) >= 3 {
		x, _ := v[0].(float64)
		y, _ := v[1].(float64)
		z, _ := v[2].(float64)
		o.Orbit.Target = rl.Vector3{X: float32(x), Y: float32(y), Z: float32(z)}
	}
	readFloat32(data, "distance", &o.Orbit.Distance)
	readFloat32(data, "yaw", &o.Orbit.Yaw)
	readFloat32(data, "pitch", &o.Orbit.Pitch)
}

func init() {
	engine.RegisterComponent("OrbitController", func() engine.Serializable {
		return NewOrbitController(rl.Vector3{}, 5)
	})
}
