package components

import (
	"gridpaint/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera renders the 3D preview. The world uses the first camera with
// IsMain set.
type Camera struct {
	engine.BaseComponent

	Fovy         float32
	Orthographic bool
	IsMain       bool
}

func NewCamera() *Camera {
	return &Camera{Fovy: 45}
}

// GetRaylibCamera follows an OrbitController on the same object, or looks
// along the object's forward axis from its world position.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}
	var cam rl.Camera3D
	if orbit := engine.GetComponent[*OrbitController](g); orbit != nil {
		cam = orbit.Orbit.GetRaylibCamera(c.Fovy)
	} else {
		eye := g.WorldPosition()
		cam = rl.Camera3D{
			Position: eye,
			Target:   rl.Vector3Add(eye, g.Forward()),
			Up:       rl.Vector3{Y: 1},
			Fovy:     c.Fovy,
		}
	}
	cam.Projection = rl.CameraPerspective
	if c.Orthographic {
		cam.Projection = rl.CameraOrthographic
	}
	return cam
}

func (c *Camera) TypeName() string { return "Camera" }

func (c *Camera) Serialize() map[string]any {
	return map[string]any{"fovy": c.Fovy, "orthographic": c.Orthographic, "isMain": c.IsMain}
}

func (c *Camera) Deserialize(data map[string]any) {
	readFloat32(data, "fovy", &c.Fovy)
	readBool(data, "orthographic", &c.Orthographic)
	readBool(data, "isMain", &c.IsMain)
}

func init() {
	engine.RegisterComponent("Camera", func() engine.Serializable { return NewCamera() })
}
