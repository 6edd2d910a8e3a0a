package colorkit

import (
	"fmt"
	"math"
	"strings"
)

// Channel selects the scalar an increment operation targets.
type Channel int

const (
	// Hue is measured in degrees.
	Hue Channel = iota
	// Saturation is stored in [0, 1] and bounded in percent.
	Saturation
	// Value is stored in [0, 1] and bounded in percent.
	Value
	// Alpha is independent of HSV; see IncrementAlphaChannel.
	Alpha
)

// String returns the lowercase channel name.
func (c Channel) String() string {
	switch c {
	case Hue:
		return "hue"
	case Saturation:
		return "saturation"
	case Value:
		return "value"
	case Alpha:
		return "alpha"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ParseChannel parses a channel name as returned by Channel.String.
func ParseChannel(s string) (Channel, error) {
	for c := Hue; c <= Alpha; c++ {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedChannel, s)
}

// Direction is the sense of an increment.
type Direction int

const (
	Lower Direction = iota
	Higher
)

// String returns "lower" or "higher".
func (d Direction) String() string {
	if d == Lower {
		return "lower"
	}
	return "higher"
}

func (d Direction) sign() float64 {
	if d == Lower {
		return -1
	}
	return 1
}

// Amount is the size of an increment.
type Amount int

const (
	// Small moves a channel by one unit: a degree of hue or a percent.
	Small Amount = iota
	// Large jumps to the next distinctly named color (hue, saturation,
	// value) or to the next multiple of ten percent (alpha).
	Large
)

// String returns "small" or "large".
func (a Amount) String() string {
	if a == Small {
		return "small"
	}
	return "large"
}

// Step sizes in the units the arithmetic works in: degrees for hue, percent
// for saturation, value and alpha.
const (
	SmallStep = 1.0

	// LargeHueStep and LargePercentStep are the fixed large jumps a host can
	// use instead of named-color snapping.
	LargeHueStep     = 30.0
	LargePercentStep = 10.0
)

// IncrementColorChannel steps one HSV channel using the default Stepper.
// See Stepper.IncrementColorChannel.
func IncrementColorChannel(hsv HSV, channel Channel, direction Direction, amount Amount, shouldWrap bool, minBound, maxBound float64) (HSV, error) {
	return defaultStepper.IncrementColorChannel(hsv, channel, direction, amount, shouldWrap, minBound, maxBound)
}

// IncrementColorChannel steps one HSV channel.
//
// Bounds are in the channel's natural units: degrees for hue, percent
// (0-100) for saturation and value. A Small step adds or subtracts one unit.
// A Large step jumps to the middle of the next differently named color region
// as reported by the stepper's Namer (see FindNextNamedColor).
//
// When a Small step leaves the bounds, the channel wraps to the opposite bound
// if shouldWrap is set and the channel was already sitting on the exceeded
// bound; otherwise it stops at that bound. If minBound >= maxBound the channel
// is pinned to minBound.
//
// Alpha and unknown channels fail with ErrUnsupportedChannel.
func (s *Stepper) IncrementColorChannel(hsv HSV, channel Channel, direction Direction, amount Amount, shouldWrap bool, minBound, maxBound float64) (HSV, error) {
	if amount != Small {
		if channel == Saturation || channel == Value {
			minBound /= 100
			maxBound /= 100
		}
		return s.FindNextNamedColor(hsv, channel, direction, shouldWrap, minBound, maxBound)
	}

	// Saturation and value are stepped in percent so that a step of one
	// does not accumulate error in the 0-1 range.
	var scale float64
	newHsv := hsv
	var target *float64
	switch channel {
	case Hue:
		target, scale = &newHsv.H, 1
	case Saturation:
		target, scale = &newHsv.S, 100
	case Value:
		target, scale = &newHsv.V, 100
	default:
		return hsv, fmt.Errorf("%w: %s", ErrUnsupportedChannel, channel)
	}

	previous := *target * scale
	*target = stepWithin(previous, previous+direction.sign()*SmallStep, shouldWrap, minBound, maxBound) / scale
	return newHsv, nil
}

// IncrementAlphaChannel steps an alpha value in [0, 1].
//
// The arithmetic runs in percent. A Small step adds or subtracts one percent.
// A Large step snaps to the next lower or higher multiple of ten percent, so
// 37% goes to 40% or 30% rather than 47% or 27%. Bounds are given in the
// same 0-1 units as alpha and follow the wrap rule of IncrementColorChannel.
func IncrementAlphaChannel(alpha float64, direction Direction, amount Amount, shouldWrap bool, minBound, maxBound float64) float64 {
	previous := alpha * 100
	next := previous

	if amount == Small {
		next += direction.sign() * SmallStep
	} else if direction == Lower {
		next = math.Ceil((previous-LargePercentStep)/LargePercentStep) * LargePercentStep
	} else {
		next = math.Floor((previous+LargePercentStep)/LargePercentStep) * LargePercentStep
	}

	return stepWithin(previous, next, shouldWrap, minBound*100, maxBound*100) / 100
}

// stepWithin applies the shared boundary rule to a channel that moved from
// previous to next. The result is never negative zero.
func stepWithin(previous, next float64, shouldWrap bool, minBound, maxBound float64) float64 {
	if minBound >= maxBound {
		return minBound
	}

	if next < minBound {
		if shouldWrap && previous == minBound {
			next = maxBound
		} else {
			next = minBound
		}
	}

	if next > maxBound {
		if shouldWrap && previous == maxBound {
			next = minBound
		} else {
			next = maxBound
		}
	}

	if next == 0 {
		// math.Ceil(-0.3) is -0.
		return 0
	}
	return next
}
