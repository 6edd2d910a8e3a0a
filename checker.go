package colorkit

import "context"

// CheckerSize is the edge length of one checkerboard tile in pixels.
const CheckerSize = 4

// CheckeredBackground synthesizes the checkerboard drawn behind translucent
// color previews.
//
// Tiles whose parity ((x/CheckerSize)+(y/CheckerSize))%2 is even are
// transparent black; the others are checker premultiplied by its own alpha.
//
// A zero width or height yields (nil, nil). Negative dimensions, or more
// than MaxPixels pixels, fail with ErrInvalidDimensions. The context is polled before every row and every
// pixel; once it is done the call returns (nil, ctx.Err()) and the partial
// buffer is dropped. Rows are filled in parallel bands (see WithWorkers).
func CheckeredBackground(ctx context.Context, width, height int, checker Color, opts ...SynthOption) (*Bitmap, error) {
	if err := checkPixels(width, height, 1); err != nil {
		return nil, err
	}
	if width == 0 || height == 0 {
		return nil, nil
	}

	o := defaultSynthOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := Logger()
	if err := ctx.Err(); err != nil {
		log.Debug("checkerboard synthesis cancelled before start", "width", width, "height", height)
		return nil, err
	}
	log.Debug("checkerboard synthesis started", "width", width, "height", height, "color", checker.String())

	bmp := NewBitmap(width, height)
	tile := checker.Premultiplied()
	blank := Color{}

	err := fillRows(ctx, height, o, func(y int, cancelled func() bool) bool {
		for x := 0; x < width; x++ {
			if cancelled() {
				return false
			}
			if ((x/CheckerSize)+(y/CheckerSize))%2 == 0 {
				bmp.setPixel(x, y, blank)
			} else {
				bmp.setPixel(x, y, tile)
			}
		}
		return true
	})
	if err != nil {
		log.Debug("checkerboard synthesis cancelled", "width", width, "height", height, "err", err)
		return nil, err
	}

	return bmp, nil
}
