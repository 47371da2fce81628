// Package colorpick implements the HSV colour picker model: the hue track
// and saturation/value plane bitmaps, pointer mapping, and the colour bus
// that fans the selected colour out to its consumers.
//
// Nothing here depends on a renderer. The components package uploads the
// bitmaps to textures and feeds pointer events in.
package colorpick

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	ErrInvalidHex       = errors.New("invalid hex colour")
	ErrUnknownColorName = errors.New("unknown colour name")
)

// HSV is a hue/saturation/value triple, each component in [0,1].
type HSV struct {
	H, S, V float64
}

// Clamp01 forces x into [0,1]. NaN becomes 0.
func Clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}

// Clamped returns c with every component forced into [0,1].
func (c HSV) Clamped() HSV {
	return HSV{H: Clamp01(c.H), S: Clamp01(c.S), V: Clamp01(c.V)}
}

// RGB converts to an opaque RGBA colour. Hue 1 is the same as hue 0.
func (c HSV) RGB() color.RGBA {
	c = c.Clamped()
	deg := math.Mod(c.H*360, 360)
	r, g, b := colorful.Hsv(deg, c.S, c.V).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%.3f, %.3f, %.3f)", c.H, c.S, c.V)
}

// FromRGB converts c to HSV. Hue is undefined for greys and saturation is
// undefined for black; in those cases the components of prev are kept so a
// hue slider does not jump when the user picks white or black.
func FromRGB(c color.Color, prev HSV) HSV {
	r, g, b, _ := c.RGBA()
	cf := colorful.Color{R: float64(r) / 65535, G: float64(g) / 65535, B: float64(b) / 65535}
	h, s, v := cf.Hsv()

	return keepUndefined(HSV{H: h / 360, S: s, V: v}.Clamped(), prev)
}

// keepUndefined copies the components of prev that c leaves undefined:
// hue for greys, hue and saturation for black.
func keepUndefined(c, prev HSV) HSV {
	if c.V == 0 {
		c.H, c.S = prev.H, prev.S
	} else if c.S == 0 {
		c.H = prev.H
	}
	return c
}

// Hex encodes c as #RRGGBB, uppercase, alpha dropped.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ParseHex accepts #RGB or #RRGGBB, with or without the leading '#', in
// any case.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if (len(s) != 4 && len(s) != 7) || !isHexDigits(s[1:]) {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	cf, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// Named looks up an SVG 1.1 colour keyword such as "tomato".
func Named(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColorName, name)
	}
	return c, nil
}
