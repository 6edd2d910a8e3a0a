package colorkit

import "errors"

var (
	// ErrUnsupportedChannel is returned when an operation receives a channel
	// it cannot act on, such as Alpha passed to IncrementColorChannel.
	ErrUnsupportedChannel = errors.New("colorkit: unsupported channel")

	// ErrInvalidDimensions is returned for negative bitmap dimensions or for
	// a request larger than MaxPixels.
	ErrInvalidDimensions = errors.New("colorkit: invalid dimensions")

	// ErrSuperseded resolves a Backdrop request that was replaced by a newer
	// one before it could commit.
	ErrSuperseded = errors.New("colorkit: superseded by a newer request")

	// ErrInvalidHex is returned by ParseHex for malformed input.
	ErrInvalidHex = errors.New("colorkit: invalid hex color")

	// ErrInvalidPalette is returned when a palette file fails validation.
	ErrInvalidPalette = errors.New("colorkit: invalid palette")

	// ErrInvalidArgument is returned for an unknown enum value or name, such
	// as a spectrum Components, Shape or Metric.
	ErrInvalidArgument = errors.New("colorkit: invalid argument")
)
