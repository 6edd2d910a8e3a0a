// Package colorkit provides the numeric core of an HSV color picker.
//
// # Overview
//
// colorkit converts between RGB and HSV, steps individual channels the way
// keyboard input on a picker does, and synthesizes the bitmaps a picker draws:
// the checkerboard behind translucent previews and the two-dimensional
// spectrum layers.
//
// # Quick Start
//
//	import "github.com/gogpu/colorkit"
//
//	red := colorkit.HSV{H: 0, S: 1, V: 1}
//
//	// One degree of hue, wrapping at 359.
//	next, err := colorkit.IncrementColorChannel(red, colorkit.Hue,
//		colorkit.Higher, colorkit.Small, true, 0, 359)
//
//	// Jump to the next distinctly named color.
//	orange, err := colorkit.IncrementColorChannel(red, colorkit.Hue,
//		colorkit.Higher, colorkit.Large, true, 0, 359)
//
//	// Render the checkerboard for a 320x24 preview.
//	bmp, err := colorkit.CheckeredBackground(ctx, 320, 24, colorkit.Color{A: 255, R: 0xC0, G: 0xC0, B: 0xC0})
//
// # Channels and units
//
// HSV stores hue in degrees and saturation and value in [0, 1]. Channel
// bounds passed to IncrementColorChannel are in natural units: degrees and
// percent. Alpha is separate from HSV and stepped with IncrementAlphaChannel.
//
// # Color names
//
// Large increments move to the next color whose name differs. Names come from
// a Namer. The default names colors after the nearest SVG named color; HexNamer
// names them by their exact ARGB value. Custom palettes load from YAML with
// LoadPalette.
//
// # Bitmaps
//
// Bitmaps are premultiplied BGRA, 4 bytes per pixel, rows top to bottom with
// stride width*4. Synthesis runs in parallel row bands, honors context
// cancellation at every pixel, and never returns a partial result. A single
// call allocates at most MaxPixels pixels.
//
// # Spectrum
//
// RenderSpectrum draws a Box or a Ring. Spectrum.ColorAt turns a pointer
// position into a color and Spectrum.PositionOf places a color's marker.
//
// # Logging
//
// The package logs through log/slog and is silent by default. See SetLogger.
package colorkit
