package colorpick

import (
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPicker(t *testing.T, opts ...Option) (*Picker, *[]Change) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.PlaneWidth, cfg.PlaneHeight = 32, 32
	cfg.HueTrackWidth, cfg.HueTrackHeight = 36, 2
	p := New(NewBus(), append([]Option{WithConfig(cfg)}, opts...)...)

	var got []Change
	p.Bus().SubscribeFunc(func(c Change) { got = append(got, c) })
	return p, &got
}

func TestPickerDefaults(t *testing.T) {
	p := New(nil)
	require.Equal(t, HSV{H: 0, S: 1, V: 1}, p.HSV())
	require.Equal(t, "#FF0000", p.Hex())
	require.Equal(t, 360, p.HueTrack().Bounds().Dx())
	require.Equal(t, 20, p.HueTrack().Bounds().Dy())
	require.Equal(t, 256, p.Plane().Bounds().Dx())
	require.Equal(t, uint64(1), p.PlaneVersion())
}

func TestPickerInitialOption(t *testing.T) {
	p := New(nil, WithInitial(HSV{H: 2, S: 0.5, V: -1}))
	require.Equal(t, HSV{H: 1, S: 0.5, V: 0}, p.HSV())
}

func TestPickerSetHueRegeneratesPlane(t *testing.T) {
	p, got := newTestPicker(t)
	before := p.Plane()

	require.True(t, p.SetHue(0.5))
	require.Len(t, *got, 1)
	require.Equal(t, 0.5, (*got)[0].HSV.H)
	require.Equal(t, uint64(2), p.PlaneVersion())
	require.NotSame(t, before, p.Plane())

	// Top-right of the plane is the pure hue.
	r, g, b := PlaneAt(p.Plane(), 31, 31)
	want := HSV{H: 0.5, S: 31.0 / 32, V: 31.0 / 32}.RGB()
	require.Equal(t, [3]uint8{want.R, want.G, want.B}, [3]uint8{r, g, b})
}

func TestPickerSaturationValueKeepsPlane(t *testing.T) {
	p, got := newTestPicker(t)
	require.True(t, p.SetSaturationValue(0.2, 0.4))
	require.Equal(t, uint64(1), p.PlaneVersion())
	require.Len(t, *got, 1)
	require.Equal(t, HSV{H: 0, S: 0.2, V: 0.4}, p.HSV())
}

func TestPickerPointerBottomLeftIsBlack(t *testing.T) {
	for _, hue := range []float64{0, 0.3, 0.8} {
		p, got := newTestPicker(t, WithInitial(HSV{H: hue, S: 1, V: 1}))
		r := Rect{X: 10, Y: 10, Width: 100, Height: 100}
		p.Pointer(Point{X: 10, Y: 10}, r)
		require.Equal(t, color.RGBA{A: 255}, p.Color())
		require.Equal(t, "#000000", (*got)[len(*got)-1].Hex)
		require.Equal(t, hue, p.HSV().H)
	}
}

func TestPickerPointerOutsideClamps(t *testing.T) {
	p, _ := newTestPicker(t)
	r := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	p.Pointer(Point{X: -500, Y: 900}, r)
	require.Equal(t, HSV{H: 0, S: 0, V: 1}, p.HSV())

	p.HuePointer(720, 0, 360)
	require.Equal(t, 1.0, p.HSV().H)
}

func TestPickerSetSameColorIsQuiet(t *testing.T) {
	p, got := newTestPicker(t)
	p.SetHSV(HSV{H: 0.61, S: 0.37, V: 0.73})
	require.Len(t, *got, 1)
	before := p.HSV()

	require.False(t, p.SetColor(p.Color()))
	require.False(t, p.SetHSV(before))
	require.NoError(t, p.SetHex(p.Hex()))
	require.Len(t, *got, 1)
	require.Equal(t, before, p.HSV())
}

func TestPickerSetWhiteKeepsHue(t *testing.T) {
	p, got := newTestPicker(t)
	p.SetHue(0.4)
	version := p.PlaneVersion()

	require.True(t, p.SetColor(color.RGBA{R: 255, G: 255, B: 255, A: 255}))
	require.Equal(t, HSV{H: 0.4, S: 0, V: 1}, p.HSV())
	require.Equal(t, version, p.PlaneVersion())
	require.Equal(t, "#FFFFFF", (*got)[len(*got)-1].Hex)

	p.SetHue(0.9)
	p.SetColor(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	require.Equal(t, 0.9, p.HSV().H)
}

func TestPickerSetHSVGreyKeepsHue(t *testing.T) {
	p, _ := newTestPicker(t)
	p.SetHue(0.4)
	version := p.PlaneVersion()

	require.True(t, p.SetHSV(HSV{H: 0, S: 0, V: 1}))
	require.Equal(t, HSV{H: 0.4, S: 0, V: 1}, p.HSV())
	require.Equal(t, version, p.PlaneVersion())

	p.SetSaturationValue(0.7, 0.5)
	require.True(t, p.SetHSV(HSV{H: 0.1, S: 0.2, V: 0}))
	require.Equal(t, HSV{H: 0.4, S: 0.7, V: 0}, p.HSV())

	require.True(t, p.SetHSV(HSV{H: 0.1, S: 0.2, V: 0.3}))
	require.Equal(t, HSV{H: 0.1, S: 0.2, V: 0.3}, p.HSV())
}

func TestPickerChangesAreSequenced(t *testing.T) {
	p, got := newTestPicker(t)
	p.SetHue(0.2)
	p.SetSaturationValue(0.5, 0.5)
	p.Announce()

	require.Len(t, *got, 3)
	require.NotZero(t, (*got)[0].Seq)
	require.Greater(t, (*got)[1].Seq, (*got)[0].Seq)
	require.Equal(t, (*got)[1].Seq, (*got)[2].Seq, "announce repeats the current state")
}

func TestPickerSetHexAndNamed(t *testing.T) {
	p, got := newTestPicker(t)
	require.NoError(t, p.SetHex("#00ff00"))
	require.Equal(t, "#00FF00", p.Hex())
	require.InDelta(t, 1.0/3, p.HSV().H, 1e-9)

	require.ErrorIs(t, p.SetHex("zz"), ErrInvalidHex)
	require.Equal(t, "#00FF00", p.Hex())

	require.NoError(t, p.SetNamed("blue"))
	require.Equal(t, "#0000FF", p.Hex())
	require.ErrorIs(t, p.SetNamed("blurple"), ErrUnknownColorName)
	require.Len(t, *got, 2)
}

func TestPickerSnapshotIsConsistent(t *testing.T) {
	p, _ := newTestPicker(t)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			p.SetHue(float64(i%100) / 100)
		}
	}()

	for i := 0; i < 200; i++ {
		st := p.Snapshot()
		want := HSV{H: st.HSV.H, S: 31.0 / 32, V: 31.0 / 32}.RGB()
		r, g, b := PlaneAt(st.Plane, 31, 31)
		require.Equal(t, [3]uint8{want.R, want.G, want.B}, [3]uint8{r, g, b})
		require.Equal(t, Hex(st.Color), st.Hex)
	}
	wg.Wait()
}
