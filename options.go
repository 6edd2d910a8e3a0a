package colorkit

// StepperOption configures a Stepper during creation.
//
// Example:
//
//	// Name colors by their exact ARGB value, like a bare color picker.
//	s := colorkit.NewStepper(colorkit.WithNamer(colorkit.HexNamer))
type StepperOption func(*stepperOptions)

type stepperOptions struct {
	namer Namer
}

// WithNamer sets the Namer used for Large increments.
// A nil namer keeps the default palette namer.
func WithNamer(n Namer) StepperOption {
	return func(o *stepperOptions) {
		if n != nil {
			o.namer = n
		}
	}
}

// SynthOption configures bitmap synthesis.
//
// Example:
//
//	bmp, err := colorkit.CheckeredBackground(ctx, 320, 24, checker, colorkit.WithWorkers(1))
type SynthOption func(*synthOptions)

type synthOptions struct {
	bands int
}

func defaultSynthOptions() synthOptions {
	return synthOptions{bands: 0} // 0 means one band per pool worker
}

// WithWorkers sets how many row bands a bitmap is split into.
// n <= 0 uses one band per pool worker (GOMAXPROCS).
func WithWorkers(n int) SynthOption {
	return func(o *synthOptions) {
		o.bands = n
	}
}

// PaletteNamerOption configures a PaletteNamer during creation.
type PaletteNamerOption func(*paletteNamerOptions)

type paletteNamerOptions struct {
	metric    Metric
	cacheSize int
}

// WithMetric sets how palette entries are compared. Default: MetricRGB.
func WithMetric(m Metric) PaletteNamerOption {
	return func(o *paletteNamerOptions) {
		o.metric = m
	}
}

// WithNameCacheSize sets the per-shard capacity of the name cache.
// Values <= 0 use the default.
func WithNameCacheSize(n int) PaletteNamerOption {
	return func(o *paletteNamerOptions) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}
