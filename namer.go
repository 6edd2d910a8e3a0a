package colorkit

// Namer assigns a display name to a color.
//
// Two colors are considered the same named color iff their names are equal.
// Implementations must be deterministic and total over the 8-bit RGB cube,
// and safe for concurrent use.
type Namer interface {
	ColorName(c Color) string
}

// NamerFunc adapts an ordinary function to the Namer interface.
type NamerFunc func(c Color) string

// ColorName calls f(c).
func (f NamerFunc) ColorName(c Color) string {
	return f(c)
}

// HexNamer names a color by its "#aarrggbb" string, so every distinct color
// has its own name. With it a Large increment moves to the next color that
// quantizes differently.
var HexNamer Namer = NamerFunc(func(c Color) string { return c.String() })

// ToDisplayName names c with the default palette namer.
func ToDisplayName(c Color) string {
	return defaultNamer().ColorName(c)
}
