package colorkit

import (
	"fmt"
	"math"
)

// Stepper performs channel increments that depend on color names.
// A Stepper is immutable and safe for concurrent use.
type Stepper struct {
	namer Namer
}

// NewStepper creates a Stepper. Without options it names colors with the
// default palette (see DefaultPalette).
func NewStepper(opts ...StepperOption) *Stepper {
	o := stepperOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.namer == nil {
		o.namer = defaultNamer()
	}
	return &Stepper{namer: o.namer}
}

var defaultStepper = &Stepper{namer: NamerFunc(func(c Color) string {
	return defaultNamer().ColorName(c)
})}

// Namer returns the namer the stepper compares colors with.
func (s *Stepper) Namer() Namer {
	return s.namer
}

// DisplayName names the opaque color an HSV value converts to.
func (s *Stepper) DisplayName(hsv HSV) string {
	return s.namer.ColorName(ColorFromRGBA(HSVToRGB(hsv), 1))
}

// FindNextNamedColor moves one channel to the next differently named color
// using the default Stepper. See Stepper.FindNextNamedColor.
func FindNextNamedColor(hsv HSV, channel Channel, direction Direction, shouldWrap bool, minBound, maxBound float64) (HSV, error) {
	return defaultStepper.FindNextNamedColor(hsv, channel, direction, shouldWrap, minBound, maxBound)
}

// FindNextNamedColor moves one channel of hsv in the given direction until the
// color's name changes, then centers the result in the newly entered named
// region.
//
// Bounds are in the channel's stored units: degrees for hue and 0-1 for
// saturation and value. Hue is walked in steps of one degree, saturation and
// value in steps of 0.01.
//
// The search has two phases. The first walks until the name differs from the
// original. Reaching a bound wraps to the other bound when shouldWrap is set;
// otherwise the channel stays on the bound and that is the result. The walk
// also gives up, keeping the last value, when the channel crosses its
// original value without having just wrapped, which means the whole range
// was covered without finding a new name.
//
// The second phase walks on until the name changes again and returns the
// midpoint of the region, snapped down to the step grid and wrapped back into
// [minBound, maxBound].
//
// Each phase is capped at one full sweep of the range so a namer that never
// changes its answer cannot stall the caller. If minBound >= maxBound the
// channel is pinned to minBound.
func (s *Stepper) FindNextNamedColor(hsv HSV, channel Channel, direction Direction, shouldWrap bool, minBound, maxBound float64) (HSV, error) {
	newHsv := hsv

	var (
		value         *float64
		step          float64
		wrapIncrement float64
	)
	switch channel {
	case Hue:
		value, step, wrapIncrement = &newHsv.H, 1, 360
	case Saturation:
		value, step, wrapIncrement = &newHsv.S, 0.01, 1
	case Value:
		value, step, wrapIncrement = &newHsv.V, 0.01, 1
	default:
		return hsv, fmt.Errorf("%w: %s", ErrUnsupportedChannel, channel)
	}

	if minBound >= maxBound {
		*value = minBound
		return newHsv, nil
	}

	delta := direction.sign() * step
	limit := int(math.Ceil((maxBound-minBound)/step)) + 2
	log := Logger()

	originalValue := *value
	originalName := s.DisplayName(hsv)
	newName := originalName
	findMidPoint := true

	for i := 0; newName == originalName; i++ {
		if i >= limit {
			log.Debug("named color search exhausted", "channel", channel, "name", originalName)
			findMidPoint = false
			break
		}

		previous := *value
		*value += delta

		justWrapped := false
		if *value > maxBound {
			if !shouldWrap {
				*value = maxBound
				findMidPoint = false
				break
			}
			*value = minBound
			justWrapped = true
		} else if *value < minBound {
			if !shouldWrap {
				*value = minBound
				findMidPoint = false
				break
			}
			*value = maxBound
			justWrapped = true
		}

		if !justWrapped && previous != originalValue &&
			sign(*value-originalValue) != sign(previous-originalValue) {
			log.Debug("named color search came full circle", "channel", channel, "name", originalName)
			findMidPoint = false
			break
		}

		newName = s.DisplayName(newHsv)
	}

	if !findMidPoint {
		return newHsv, nil
	}

	start := *value
	currentHsv := newHsv
	var current *float64
	switch channel {
	case Hue:
		current = &currentHsv.H
	case Saturation:
		current = &currentHsv.S
	default:
		current = &currentHsv.V
	}

	var startEndOffset float64
	currentName := newName
	for i := 0; currentName == newName && i < limit; i++ {
		*current += delta

		if *current > maxBound {
			if !shouldWrap {
				*current = maxBound
				break
			}
			*current = minBound
			startEndOffset = maxBound - minBound
		} else if *current < minBound {
			if !shouldWrap {
				*current = minBound
				break
			}
			*current = maxBound
			startEndOffset = minBound - maxBound
		}

		currentName = s.DisplayName(currentHsv)
	}

	mid := snapToStep((start+*current+startEndOffset)/2, step)
	for mid < minBound {
		mid += wrapIncrement
	}
	for mid > maxBound {
		mid -= wrapIncrement
	}
	*value = math.Max(minBound, math.Min(maxBound, mid))

	log.Debug("named color found",
		"channel", channel,
		"from", originalName,
		"to", newName,
		"value", *value)

	return newHsv, nil
}

// snapToStep rounds v down onto the grid of multiples of step. A value
// within float noise of a grid line stays on it.
func snapToStep(v, step float64) float64 {
	return math.Floor(v/step+1e-9) * step
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
