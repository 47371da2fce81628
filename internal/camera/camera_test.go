package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

func TestOrbitDefaultLooksAlongZ(t *testing.T) {
	o := New(rl.Vector3{}, 5)
	o.Pitch = 0
	pos := o.Position()
	require.InDelta(t, 0, pos.X, 1e-5)
	require.InDelta(t, 0, pos.Y, 1e-5)
	require.InDelta(t, -5, pos.Z, 1e-5)

	cam := o.GetRaylibCamera(45)
	require.Equal(t, o.Target, cam.Target)
	require.Equal(t, float32(45), cam.Fovy)
}

func TestOrbitPitchClamp(t *testing.T) {
	o := New(rl.Vector3{}, 5)
	o.Rotate(0, 10000)
	require.Equal(t, float32(89), o.Pitch)
	require.Greater(t, o.Position().Y, float32(4.9))

	o.Rotate(0, -100000)
	require.Equal(t, float32(-89), o.Pitch)
}

func TestOrbitZoomClamp(t *testing.T) {
	o := New(rl.Vector3{X: 1, Y: 2, Z: 3}, 5)
	o.Zoom(100)
	require.Equal(t, o.MinDistance, o.Distance)
	o.Zoom(-100)
	require.Equal(t, o.MaxDistance, o.Distance)
	require.InDelta(t, o.MaxDistance, rl.Vector3Distance(o.Position(), o.Target), 1e-3)
}
