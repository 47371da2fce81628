package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Orbit circles a camera around a target point. Yaw and pitch are in
// degrees; yaw 90 with pitch 0 puts the camera on the -Z side looking
// towards +Z.
type Orbit struct {
	Target    rl.Vector3
	Distance  float32
	Yaw       float32
	Pitch     float32
	LookSpeed float32

	MinDistance float32
	MaxDistance float32
}

func New(target rl.Vector3, distance float32) *Orbit {
	return &Orbit{
		Target:      target,
		Distance:    distance,
		Yaw:         90,
		Pitch:       15,
		LookSpeed:   0.3,
		MinDistance: 1.5,
		MaxDistance: 20,
	}
}

// Rotate turns the orbit by a mouse delta in pixels.
func (o *Orbit) Rotate(dx, dy float32) {
	o.Yaw += dx * o.LookSpeed
	o.Pitch += dy * o.LookSpeed

	// Clamp pitch
	if o.Pitch > 89 {
		o.Pitch = 89
	}
	if o.Pitch < -89 {
		o.Pitch = -89
	}
}

// Zoom moves the camera towards (positive) or away from the target.
func (o *Orbit) Zoom(amount float32) {
	o.Distance -= amount
	if o.Distance < o.MinDistance {
		o.Distance = o.MinDistance
	}
	if o.Distance > o.MaxDistance {
		o.Distance = o.MaxDistance
	}
}

// Direction is the unit vector from the camera to the target.
func (o *Orbit) Direction() rl.Vector3 {
	yawRad := float64(o.Yaw) * math.Pi / 180
	pitchRad := float64(o.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(-math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

func (o *Orbit) Position() rl.Vector3 {
	return rl.Vector3Subtract(o.Target, rl.Vector3Scale(o.Direction(), o.Distance))
}

func (o *Orbit) GetRaylibCamera(fovy float32) rl.Camera3D {
	return rl.Camera3D{
		Position:   o.Position(),
		Target:     o.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	}
}
