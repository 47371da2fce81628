package colorpick

// Point is a position in a y-up coordinate space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in a y-up space; X, Y is the
// bottom-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// MapPointer converts p into (saturation, value) relative to the plane
// rectangle r. Points outside r are clamped so a drag can continue past the
// edge; a zero-sized axis maps to 0.
func MapPointer(p Point, r Rect) (s, v float64) {
	return axis(p.X, r.X, r.Width), axis(p.Y, r.Y, r.Height)
}

// MapHue converts a position along the hue track into a hue.
func MapHue(x, left, width float64) float64 {
	return axis(x, left, width)
}

func axis(p, origin, size float64) float64 {
	if !(size > 0) {
		return 0
	}
	return Clamp01((p - origin) / size)
}
