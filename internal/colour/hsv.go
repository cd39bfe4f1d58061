// Package colour provides colour-space conversion, dominant-colour
// extraction and chromatic classification for cover images.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255].
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Color converts an RGB value to a color.Color with full opacity.
func (rgb RGB) Color() color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// ParseHex parses a hex colour string ("#1a2b3c" or "1a2b3c") into RGB.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected 6 hex digits", s)
	}
	var rgb RGB
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &rgb.R, &rgb.G, &rgb.B); err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return rgb, nil
}

// HSV represents a colour in hue/saturation/value space.
// H is in degrees [0, 360), S and V are in [0, 1].
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// RGBToHSV converts an RGB colour to HSV.
func RGBToHSV(rgb RGB) HSV {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	hsv := HSV{V: maxVal}
	if maxVal > 0 {
		hsv.S = delta / maxVal
	}
	if delta == 0 {
		// Achromatic: hue is undefined, report 0.
		return hsv
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	hsv.H = h * 60

	return hsv
}

// RGB converts an HSV colour back to 8-bit RGB.
func (c HSV) RGB() RGB {
	if c.S == 0 {
		// Achromatic (grey).
		v := uint8(math.Round(c.V * 255))
		return RGB{R: v, G: v, B: v}
	}

	h := NormalizeHue(c.H) / 60
	sector := int(math.Floor(h)) % 6
	f := h - math.Floor(h)

	p := c.V * (1 - c.S)
	q := c.V * (1 - c.S*f)
	t := c.V * (1 - c.S*(1-f))

	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = c.V, t, p
	case 1:
		r, g, b = q, c.V, p
	case 2:
		r, g, b = p, c.V, t
	case 3:
		r, g, b = p, q, c.V
	case 4:
		r, g, b = t, p, c.V
	default:
		r, g, b = c.V, p, q
	}

	return RGB{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

// NormalizeHue wraps a hue angle into the range [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// HueDistance calculates the angular distance between two hues on the
// colour wheel. Returns a value between 0 and 180 degrees (shortest path
// around the wheel). Hue is circular, so 350 and 10 are 20 degrees apart.
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(NormalizeHue(h1) - NormalizeHue(h2))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// meanHue returns the circular mean of an accumulated hue vector.
// sinSum and cosSum are sums of sin/cos of hue angles in radians.
func meanHue(sinSum, cosSum float64) float64 {
	deg := math.Atan2(sinSum, cosSum) * 180 / math.Pi
	return NormalizeHue(deg)
}
