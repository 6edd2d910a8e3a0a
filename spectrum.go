package colorkit

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// Components names the two HSV channels a spectrum spans. The first channel
// runs along x, the second along y. The remaining channel is the third
// dimension a host blends in with the Min, Middle and Max layers.
type Components int

const (
	HueValue Components = iota
	ValueHue
	HueSaturation
	SaturationHue
	SaturationValue
	ValueSaturation
)

var componentNames = [...]string{
	HueValue:        "hue-value",
	ValueHue:        "value-hue",
	HueSaturation:   "hue-saturation",
	SaturationHue:   "saturation-hue",
	SaturationValue: "saturation-value",
	ValueSaturation: "value-saturation",
}

func (c Components) String() string {
	if c < 0 || int(c) >= len(componentNames) {
		return fmt.Sprintf("Components(%d)", int(c))
	}
	return componentNames[c]
}

// ParseComponents parses a name as returned by Components.String.
func ParseComponents(s string) (Components, error) {
	for i, name := range componentNames {
		if strings.EqualFold(s, name) {
			return Components(i), nil
		}
	}
	return 0, fmt.Errorf("%w: components %q", ErrInvalidArgument, s)
}

// thirdIsHue reports whether hue is the channel not on either axis.
func (c Components) thirdIsHue() bool {
	return c == SaturationValue || c == ValueSaturation
}

// SpectrumBounds restrict the channels of a spectrum. Hue is in degrees,
// saturation and value in percent. A range whose min is not below its max
// is pinned to min.
type SpectrumBounds struct {
	MinHue, MaxHue               int
	MinSaturation, MaxSaturation int
	MinValue, MaxValue           int
}

// DefaultSpectrumBounds covers the whole HSV cylinder.
func DefaultSpectrumBounds() SpectrumBounds {
	return SpectrumBounds{
		MinHue: 0, MaxHue: 359,
		MinSaturation: 0, MaxSaturation: 100,
		MinValue: 0, MaxValue: 100,
	}
}

// middleHues are the hues of the inner layers used when hue is the third
// dimension. Min is hue 0 and Max hue 300.
var middleHues = [4]float64{60, 120, 180, 240}

// Shape is the outline of a spectrum.
type Shape int

const (
	// Box puts the first channel on x and the second on y.
	Box Shape = iota
	// Ring puts the first channel on the angle around the center, clockwise
	// from the positive x axis, and the second on the distance from the
	// edge. Pixels outside the inscribed circle stay transparent.
	Ring
)

var shapeNames = [...]string{
	Box:  "box",
	Ring: "ring",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape parses a name as returned by Shape.String.
func ParseShape(s string) (Shape, error) {
	for i, name := range shapeNames {
		if strings.EqualFold(s, name) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: shape %q", ErrInvalidArgument, s)
}

// Spectrum is the set of bitmaps behind a two-dimensional color picker.
type Spectrum struct {
	Size       int
	Shape      Shape
	Components Components
	Bounds     SpectrumBounds

	// Min and Max hold the third dimension at its low and high end.
	Min, Max *Bitmap
	// Middle holds the intermediate hue layers. It is empty unless hue is
	// the third dimension.
	Middle []*Bitmap

	values []HSV
}

// HSVAt returns the HSV value of the Min layer at (x, y). Ring pixels
// outside the circle report the value of the nearest point on it.
func (s *Spectrum) HSVAt(x, y int) (HSV, bool) {
	if x < 0 || y < 0 || x >= s.Size || y >= s.Size {
		return HSV{}, false
	}
	return s.values[y*s.Size+x], true
}

// ColorAt returns the color a picker selects at the point (x, y). The point
// is moved onto the circle for a Ring, rounded to the nearest pixel and
// clamped into the spectrum. The third dimension is taken from current.
func (s *Spectrum) ColorAt(x, y float64, current HSV) HSV {
	if s.Shape == Ring {
		radius := float64(s.Size) / 2
		dx, dy := x-radius, y-radius
		if dist := math.Hypot(dx, dy); dist > radius {
			x, y = radius+dx*radius/dist, radius+dy*radius/dist
		}
	}

	px := pixelIndex(x, s.Size)
	py := pixelIndex(y, s.Size)
	hsv := s.values[py*s.Size+px]

	switch s.Components {
	case HueValue, ValueHue:
		hsv.S = current.S
	case HueSaturation, SaturationHue:
		hsv.V = current.V
	default:
		hsv.H = current.H
	}
	return hsv
}

// PositionOf returns the point of the spectrum that shows hsv, in the pixel
// coordinates ColorAt takes. Each channel is clamped to the bounds first;
// the third dimension does not move the point.
func (s *Spectrum) PositionOf(hsv HSV) (x, y float64) {
	u, w := s.Bounds.ranges().fractions(s.Components, hsv)

	if s.Shape == Ring {
		radius := float64(s.Size) / 2
		theta := u * 2 * math.Pi
		dist := (1 - w) * radius
		return radius + math.Cos(theta)*dist, radius + math.Sin(theta)*dist
	}

	span := spanOf(s.Size)
	return u * span, w * span
}

// pixelIndex rounds v to a pixel index in [0, n).
func pixelIndex(v float64, n int) int {
	v = math.Round(v)
	if !(v > 0) {
		return 0
	}
	if v > float64(n-1) {
		return n - 1
	}
	return int(v)
}

// spanOf is the largest box coordinate; a single pixel spans 1.
func spanOf(size int) float64 {
	if size <= 1 {
		return 1
	}
	return float64(size - 1)
}

// axisRange converts a pair of integer bounds into a float range.
func axisRange(lo, hi int, scale float64) (float64, float64) {
	if lo >= hi {
		hi = lo
	}
	return float64(lo) / scale, float64(hi) / scale
}

// channelRanges are SpectrumBounds in HSV units.
type channelRanges struct {
	hMin, hMax float64
	sMin, sMax float64
	vMin, vMax float64
}

func (b SpectrumBounds) ranges() channelRanges {
	var r channelRanges
	r.hMin, r.hMax = axisRange(b.MinHue, b.MaxHue, 1)
	r.sMin, r.sMax = axisRange(b.MinSaturation, b.MaxSaturation, 100)
	r.vMin, r.vMax = axisRange(b.MinValue, b.MaxValue, 100)
	return r
}

// hsvAt maps the fraction u along the first channel and w along the second
// to HSV. The third channel is left at zero.
func (r channelRanges) hsvAt(c Components, u, w float64) HSV {
	var hsv HSV
	switch c {
	case HueValue:
		hsv.H, hsv.V = lerp(r.hMin, r.hMax, u), lerp(r.vMin, r.vMax, w)
	case ValueHue:
		hsv.V, hsv.H = lerp(r.vMin, r.vMax, u), lerp(r.hMin, r.hMax, w)
	case HueSaturation:
		hsv.H, hsv.S = lerp(r.hMin, r.hMax, u), lerp(r.sMin, r.sMax, w)
	case SaturationHue:
		hsv.S, hsv.H = lerp(r.sMin, r.sMax, u), lerp(r.hMin, r.hMax, w)
	case SaturationValue:
		hsv.S, hsv.V = lerp(r.sMin, r.sMax, u), lerp(r.vMin, r.vMax, w)
	case ValueSaturation:
		hsv.V, hsv.S = lerp(r.vMin, r.vMax, u), lerp(r.sMin, r.sMax, w)
	}

	if c == HueSaturation || c == SaturationHue {
		hsv.S = r.sMax - hsv.S + r.sMin
	} else {
		hsv.V = r.vMax - hsv.V + r.vMin
	}
	return hsv
}

// fractions is the inverse of hsvAt.
func (r channelRanges) fractions(c Components, hsv HSV) (u, w float64) {
	h := fraction(hsv.H, r.hMin, r.hMax)
	s := fraction(hsv.S, r.sMin, r.sMax)
	v := fraction(hsv.V, r.vMin, r.vMax)
	if c == HueSaturation || c == SaturationHue {
		s = 1 - s
	} else {
		v = 1 - v
	}

	switch c {
	case HueValue:
		return h, v
	case ValueHue:
		return v, h
	case HueSaturation:
		return h, s
	case SaturationHue:
		return s, h
	case SaturationValue:
		return s, v
	default:
		return v, s
	}
}

// fraction is the position of x within [lo, hi], clamped to [0, 1].
// An empty range yields 0.
func fraction(x, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return clamp01((x - lo) / (hi - lo))
}

// ringPoint maps pixel (x, y) of a ring to the fraction u around the circle
// and w from the edge (0) to the center (1). Points outside the circle are
// projected onto it and reported as not inside.
func ringPoint(x, y, radius float64) (u, w float64, inside bool) {
	dx, dy := x-radius, y-radius
	dist := math.Hypot(dx, dy)
	inside = dist <= radius
	if !inside {
		dx, dy = dx*radius/dist, dy*radius/dist
		dist = radius
	}

	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg / 360, 1 - dist/radius, inside
}

// RenderSpectrum renders the spectrum layers for a size x size picker.
//
// For a Box the first channel of components grows with x and the second
// with y; a Ring is described on Shape. Saturation is inverted when it pairs
// with hue, value otherwise, so the vivid end sits at the top of a box and
// on the edge of a ring. A zero size yields (nil, nil). A negative size, or
// layers totalling more than MaxPixels, fails with ErrInvalidDimensions.
// Cancellation behaves as in CheckeredBackground.
func RenderSpectrum(ctx context.Context, size int, shape Shape, components Components, bounds SpectrumBounds, opts ...SynthOption) (*Spectrum, error) {
	if components < HueValue || components > ValueSaturation {
		return nil, fmt.Errorf("%w: components %s", ErrInvalidArgument, components)
	}
	if shape != Box && shape != Ring {
		return nil, fmt.Errorf("%w: shape %s", ErrInvalidArgument, shape)
	}
	layers := 2
	if components.thirdIsHue() {
		layers += len(middleHues)
	}
	if err := checkPixels(size, size, layers); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}

	o := defaultSynthOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := Logger()
	if err := ctx.Err(); err != nil {
		log.Debug("spectrum synthesis cancelled before start", "size", size, "shape", shape, "components", components)
		return nil, err
	}
	log.Debug("spectrum synthesis started", "size", size, "shape", shape, "components", components)

	r := bounds.ranges()
	s := &Spectrum{
		Size:       size,
		Shape:      shape,
		Components: components,
		Bounds:     bounds,
		Min:        NewBitmap(size, size),
		Max:        NewBitmap(size, size),
		values:     make([]HSV, size*size),
	}
	if components.thirdIsHue() {
		s.Middle = make([]*Bitmap, len(middleHues))
		for i := range s.Middle {
			s.Middle[i] = NewBitmap(size, size)
		}
	}

	span := spanOf(size)
	radius := float64(size) / 2

	err := fillRows(ctx, size, o, func(y int, cancelled func() bool) bool {
		for x := 0; x < size; x++ {
			if cancelled() {
				return false
			}

			var (
				u, w   float64
				inside = true
			)
			if shape == Ring {
				u, w, inside = ringPoint(float64(x), float64(y), radius)
			} else {
				u, w = float64(x)/span, float64(y)/span
			}

			hsv := r.hsvAt(components, u, w)
			lo, hi := hsv, hsv
			switch components {
			case HueValue, ValueHue:
				lo.S, hi.S = 0, 1
			case HueSaturation, SaturationHue:
				lo.V, hi.V = 0, 1
			default:
				lo.H, hi.H = 0, 300
			}
			s.values[y*size+x] = lo

			if !inside {
				continue
			}
			if s.Middle != nil {
				for i, h := range middleHues {
					mid := hsv
					mid.H = h
					s.Middle[i].setPixel(x, y, ColorFromRGBA(HSVToRGB(mid), 1))
				}
			}
			s.Min.setPixel(x, y, ColorFromRGBA(HSVToRGB(lo), 1))
			s.Max.setPixel(x, y, ColorFromRGBA(HSVToRGB(hi), 1))
		}
		return true
	})
	if err != nil {
		log.Debug("spectrum synthesis cancelled", "size", size, "err", err)
		return nil, err
	}

	return s, nil
}

// Flatten composites the layers for a third-dimension value taken from base,
// the way a picker stacks them with varying opacity. When hue is an axis the
// third dimension is base.S or base.V in [0, 1]; otherwise it is base.H,
// blended between the neighboring hue layers and wrapping from 300 back to 0.
func (s *Spectrum) Flatten(base HSV) *Bitmap {
	var (
		from, to *Bitmap
		t        float64
	)
	switch s.Components {
	case HueValue, ValueHue:
		from, to, t = s.Min, s.Max, clamp01(base.S)
	case HueSaturation, SaturationHue:
		from, to, t = s.Min, s.Max, clamp01(base.V)
	default:
		ring := make([]*Bitmap, 0, len(s.Middle)+3)
		ring = append(ring, s.Min)
		ring = append(ring, s.Middle...)
		ring = append(ring, s.Max, s.Min)

		h := normalizeHue(base.H) / 60
		i := int(h)
		from, to, t = ring[i], ring[i+1], h-float64(i)
	}

	out := NewBitmap(s.Size, s.Size)
	src, dst, data := from.Data(), to.Data(), out.Data()
	for i := range data {
		data[i] = uint8(lerp(float64(src[i]), float64(dst[i]), t))
	}
	return out
}

func lerp(lo, hi, t float64) float64 {
	return lo + t*(hi-lo)
}
