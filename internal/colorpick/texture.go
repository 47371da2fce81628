package colorpick

import (
	"image"
)

const (
	DefaultHueTrackWidth  = 360
	DefaultHueTrackHeight = 20
	DefaultPlaneSize      = 256
)

// HueTrack renders the 1-D hue gradient: column x holds HSV(x/w, 1, 1).
// Every row is identical. Non-positive sizes fall back to the defaults.
func HueTrack(w, h int) *image.RGBA {
	if w <= 0 {
		w = DefaultHueTrackWidth
	}
	if h <= 0 {
		h = DefaultHueTrackHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		c := HSV{H: float64(x) / float64(w), S: 1, V: 1}.RGB()
		for y := 0; y < h; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// HueColumn returns the track column that encodes hue h for a track of
// width w.
func HueColumn(h float64, w int) int {
	x := int(Clamp01(h) * float64(w))
	if x >= w {
		x = w - 1
	}
	return x
}

// SVPlane renders the saturation/value plane for hue. Plane coordinates are
// y-up: (x, y) encodes HSV(hue, x/w, y/h) and is stored in image row h-1-y,
// so the bottom-left pixel is black and the top-right one is the pure hue.
func SVPlane(hue float64, w, h int) *image.RGBA {
	if w <= 0 {
		w = DefaultPlaneSize
	}
	if h <= 0 {
		h = DefaultPlaneSize
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	renderPlane(img, hue)
	return img
}

// renderPlane redraws img in place for hue.
func renderPlane(img *image.RGBA, hue float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	hue = Clamp01(hue)
	for y := 0; y < h; y++ {
		v := float64(y) / float64(h)
		row := h - 1 - y
		for x := 0; x < w; x++ {
			c := HSV{H: hue, S: float64(x) / float64(w), V: v}.RGB()
			i := img.PixOffset(b.Min.X+x, b.Min.Y+row)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
}

// PlaneAt returns the pixel at plane coordinate (x, y), y measured upwards.
func PlaneAt(img *image.RGBA, x, y int) (r, g, b uint8) {
	bounds := img.Bounds()
	c := img.RGBAAt(bounds.Min.X+x, bounds.Max.Y-1-y)
	return c.R, c.G, c.B
}
