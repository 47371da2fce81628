package colorpick

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHueTrackDefaults(t *testing.T) {
	img := HueTrack(0, -1)
	require.Equal(t, DefaultHueTrackWidth, img.Bounds().Dx())
	require.Equal(t, DefaultHueTrackHeight, img.Bounds().Dy())
}

func TestHueTrackMatchesHSVConversion(t *testing.T) {
	const w = 360
	img := HueTrack(w, 4)

	rng := rand.New(rand.NewSource(1))
	hues := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := 0; i < 200; i++ {
		hues = append(hues, rng.Float64())
	}

	for _, h := range hues {
		x := HueColumn(h, w)
		track := img.RGBAAt(x, 2)
		// The column encodes x/w, the left edge of the bucket h falls in.
		want := HSV{H: float64(x) / w, S: 1, V: 1}.RGB()
		require.Equal(t, want, track, "hue %v column %d", h, x)

		direct := HSV{H: h, S: 1, V: 1}.RGB()
		require.InDelta(t, int(direct.R), int(track.R), 5, "hue %v", h)
		require.InDelta(t, int(direct.G), int(track.G), 5, "hue %v", h)
		require.InDelta(t, int(direct.B), int(track.B), 5, "hue %v", h)
	}
}

func TestHueColumnBounds(t *testing.T) {
	require.Equal(t, 0, HueColumn(-1, 360))
	require.Equal(t, 359, HueColumn(1, 360))
	require.Equal(t, 180, HueColumn(0.5, 360))
}

func TestSVPlaneCorners(t *testing.T) {
	for _, hue := range []float64{0, 0.3, 0.66, 1} {
		img := SVPlane(hue, 64, 32)
		require.Equal(t, 64, img.Bounds().Dx())
		require.Equal(t, 32, img.Bounds().Dy())

		r, g, b := PlaneAt(img, 0, 0)
		require.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b}, "bottom-left is black for hue %v", hue)

		// Image row 0 is the top of the plane.
		top := img.RGBAAt(0, 0)
		want := HSV{H: hue, S: 0, V: 31.0 / 32}.RGB()
		require.Equal(t, want, top)
	}
}

func TestSVPlaneEncodesCoordinates(t *testing.T) {
	const w, h = 16, 8
	hue := 0.42
	img := SVPlane(hue, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := HSV{H: hue, S: float64(x) / w, V: float64(y) / h}.RGB()
			r, g, b := PlaneAt(img, x, y)
			require.Equal(t, [3]uint8{want.R, want.G, want.B}, [3]uint8{r, g, b}, "(%d,%d)", x, y)
		}
	}
}

func TestSVPlaneDefaults(t *testing.T) {
	img := SVPlane(0, 0, 0)
	require.Equal(t, DefaultPlaneSize, img.Bounds().Dx())
	require.Equal(t, DefaultPlaneSize, img.Bounds().Dy())
}
