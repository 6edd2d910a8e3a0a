package colorkit

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is a color with red, green and blue components in [0, 1].
type RGB struct {
	R, G, B float64
}

// HSV is a color in the hue-saturation-value cylinder.
//
// H is in degrees. It is normally kept in [0, 360) but arithmetic may push it
// outside that range; HSVToRGB normalizes it. S and V are in [0, 1].
type HSV struct {
	H, S, V float64
}

// Color is a displayable color with 8 bits per channel.
// The channels are stored straight (not premultiplied).
type Color struct {
	A, R, G, B uint8
}

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

// RGBToHSV converts an RGB triple to HSV.
//
// Greyscale input (zero chroma) has no defined hue; by convention both hue
// and saturation are reported as 0.
func RGBToHSV(rgb RGB) HSV {
	maxC := math.Max(rgb.R, math.Max(rgb.G, rgb.B))
	minC := math.Min(rgb.R, math.Min(rgb.G, rgb.B))

	value := maxC
	chroma := maxC - minC

	if chroma == 0 {
		return HSV{H: 0, S: 0, V: value}
	}

	var hue float64
	switch maxC {
	case rgb.R:
		hue = 60 * (rgb.G - rgb.B) / chroma
	case rgb.G:
		hue = 120 + 60*(rgb.B-rgb.R)/chroma
	default:
		hue = 240 + 60*(rgb.R-rgb.G)/chroma
	}

	if hue < 0 {
		hue += 360
	}

	return HSV{H: hue, S: chroma / value, V: value}
}

// HSVToRGB converts an HSV triple to RGB.
//
// Hue is wrapped into [0, 360) and saturation and value are clamped to [0, 1]
// before conversion, so any HSV produced by channel arithmetic is accepted.
func HSVToRGB(hsv HSV) RGB {
	hue := normalizeHue(hsv.H)
	saturation := clamp01(hsv.S)
	value := clamp01(hsv.V)

	chroma := saturation * value
	minC := value - chroma

	if chroma == 0 {
		return RGB{R: minC, G: minC, B: minC}
	}

	sextant := int(hue / 60)
	frac := hue/60 - float64(sextant)
	maxC := chroma + minC

	switch sextant {
	case 0:
		return RGB{R: maxC, G: minC + chroma*frac, B: minC}
	case 1:
		return RGB{R: minC + chroma*(1-frac), G: maxC, B: minC}
	case 2:
		return RGB{R: minC, G: maxC, B: minC + chroma*frac}
	case 3:
		return RGB{R: minC, G: minC + chroma*(1-frac), B: maxC}
	case 4:
		return RGB{R: minC + chroma*frac, G: minC, B: maxC}
	default:
		return RGB{R: maxC, G: minC, B: minC + chroma*(1-frac)}
	}
}

// ColorFromRGBA quantizes an RGB triple and a separate alpha to a Color.
//
// Each component is scaled by 255 and truncated toward zero, so 0.99 maps to
// 252 rather than 252.45 rounded. Out-of-range input is clamped first.
func ColorFromRGBA(rgb RGB, alpha float64) Color {
	return Color{
		A: quantize(alpha),
		R: quantize(rgb.R),
		G: quantize(rgb.G),
		B: quantize(rgb.B),
	}
}

// FromColor converts any color.Color to a Color.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{A: n.A, R: n.R, G: n.G, B: n.B}
}

// RGBA implements the color.Color interface.
// It returns alpha-premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// RGB returns the color channels normalized to [0, 1].
func (c Color) RGB() RGB {
	return RGB{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Alpha returns the alpha channel normalized to [0, 1].
func (c Color) Alpha() float64 {
	return float64(c.A) / 255
}

// HSV returns the HSV projection of the color channels. Alpha is dropped.
func (c Color) HSV() HSV {
	return RGBToHSV(c.RGB())
}

// Premultiplied returns the color with each channel scaled by its own alpha,
// using integer arithmetic.
func (c Color) Premultiplied() Color {
	a := uint16(c.A)
	return Color{
		A: c.A,
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
	}
}

// String renders the color as "#aarrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
}

// Hex renders the color channels as "#RRGGBB", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses a hex color string.
// Supported formats: "RGB", "RRGGBB" and "AARRGGBB", each with or without a
// leading '#'. Forms without alpha are opaque.
func ParseHex(s string) (Color, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	digits := make([]uint8, len(hex))
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		digits[i] = d
	}

	switch len(digits) {
	case 3: // RGB
		return Color{
			A: 255,
			R: digits[0] * 17,
			G: digits[1] * 17,
			B: digits[2] * 17,
		}, nil
	case 6: // RRGGBB
		return Color{
			A: 255,
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
		}, nil
	case 8: // AARRGGBB
		return Color{
			A: digits[0]<<4 | digits[1],
			R: digits[2]<<4 | digits[3],
			G: digits[4]<<4 | digits[5],
			B: digits[6]<<4 | digits[7],
		}, nil
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// quantize maps [0, 1] to [0, 255], truncating toward zero.
func quantize(x float64) uint8 {
	v := x * 255
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// normalizeHue wraps h into [0, 360).
func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		// -tiny + 360 rounds up to exactly 360.
		h = 0
	}
	return h
}

// clamp01 restricts x to [0, 1]. NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
