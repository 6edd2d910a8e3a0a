package colorkit

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/colorkit/internal/cache"
)

// PaletteEntry is a named reference color.
type PaletteEntry struct {
	Name  string
	Color Color
}

// Palette is an ordered list of named colors. Order breaks distance ties:
// the earlier entry wins.
type Palette []PaletteEntry

// Metric measures how far apart two colors are. Alpha is ignored.
type Metric int

const (
	// MetricRGB is squared Euclidean distance in 8-bit RGB.
	MetricRGB Metric = iota
	// MetricLab is Euclidean distance in CIE L*a*b*.
	MetricLab
	// MetricCIEDE2000 is the CIEDE2000 color difference.
	MetricCIEDE2000
)

var metricNames = [...]string{
	MetricRGB:       "rgb",
	MetricLab:       "lab",
	MetricCIEDE2000: "ciede2000",
}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

// ParseMetric parses a name as returned by Metric.String.
func ParseMetric(s string) (Metric, error) {
	for i, name := range metricNames {
		if strings.EqualFold(s, name) {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown metric %q", ErrInvalidArgument, s)
}

// Distance returns the distance between a and b under m.
func (m Metric) Distance(a, b Color) float64 {
	switch m {
	case MetricLab:
		return toColorful(a).DistanceLab(toColorful(b))
	case MetricCIEDE2000:
		return toColorful(a).DistanceCIEDE2000(toColorful(b))
	default:
		dr := int(a.R) - int(b.R)
		dg := int(a.G) - int(b.G)
		db := int(a.B) - int(b.B)
		return float64(dr*dr + dg*dg + db*db)
	}
}

func toColorful(c Color) colorful.Color {
	rgb := c.RGB()
	return colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}
}

// Nearest returns the entry closest to c by squared Euclidean distance in
// 8-bit RGB. It reports false for an empty palette.
func (p Palette) Nearest(c Color) (PaletteEntry, bool) {
	return p.NearestBy(c, MetricRGB)
}

// NearestBy returns the entry closest to c under m.
func (p Palette) NearestBy(c Color, m Metric) (PaletteEntry, bool) {
	if len(p) == 0 {
		return PaletteEntry{}, false
	}

	best, bestDist := 0, math.Inf(1)
	for i, e := range p {
		d := m.Distance(c, e.Color)
		if d < bestDist {
			best, bestDist = i, d
			if d == 0 {
				break
			}
		}
	}
	return p[best], true
}

// keywordWords are the words CSS color keywords are made of. Compound
// terms that read as one word, such as "goldenrod", are listed whole.
var keywordWords = wordSet(
	"alice", "almond", "antique", "aqua", "aquamarine", "azure", "beige",
	"bisque", "black", "blanched", "blue", "blush", "brown", "burly",
	"cadet", "chartreuse", "chiffon", "chocolate", "coral", "cornflower",
	"cornsilk", "cream", "crimson", "cyan", "dark", "deep", "dim", "dodger",
	"drab", "firebrick", "floral", "forest", "fuchsia", "gainsboro", "ghost",
	"gold", "goldenrod", "gray", "green", "grey", "honeydew", "hot",
	"indian", "indigo", "ivory", "khaki", "lace", "lavender", "lawn",
	"lemon", "light", "lime", "linen", "magenta", "maroon", "medium",
	"midnight", "mint", "misty", "moccasin", "navajo", "navy", "old",
	"olive", "orange", "orchid", "pale", "papaya", "peach", "peru", "pink",
	"plum", "powder", "puff", "purple", "rebecca", "red", "rose", "rosy",
	"royal", "saddle", "salmon", "sandy", "sea", "shell", "sienna", "silver",
	"sky", "slate", "smoke", "snow", "spring", "steel", "tan", "teal",
	"thistle", "tomato", "turquoise", "violet", "wheat", "whip", "white",
	"wood", "yellow",
)

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// modifierPrefixes are split off keywords that keywordWords cannot cover,
// so an unknown "darkfoo" still reads "Dark Foo".
var modifierPrefixes = []string{"dark", "light", "medium", "pale", "deep"}

// splitKeyword splits s into the fewest keywordWords that spell it, or
// returns nil if there is no such split.
func splitKeyword(s string) []string {
	// best[i] is the word count of the best split of s[:i], -1 if none.
	best := make([]int, len(s)+1)
	from := make([]int, len(s)+1)
	for i := 1; i <= len(s); i++ {
		best[i] = -1
		for j := 0; j < i; j++ {
			if best[j] < 0 || !keywordWords[s[j:i]] {
				continue
			}
			if best[i] < 0 || best[j]+1 < best[i] {
				best[i], from[i] = best[j]+1, j
			}
		}
	}
	if len(s) == 0 || best[len(s)] < 0 {
		return nil
	}

	words := make([]string, best[len(s)])
	for i, k := len(s), len(words)-1; i > 0; i, k = from[i], k-1 {
		words[k] = s[from[i]:i]
	}
	return words
}

// DisplayName turns a CSS color keyword into a title-cased display name,
// so "darkolivegreen" reads "Dark Olive Green".
func DisplayName(keyword string) string {
	keyword = strings.ToLower(keyword)
	words := keyword
	if parts := splitKeyword(keyword); parts != nil {
		words = strings.Join(parts, " ")
	} else {
		for _, p := range modifierPrefixes {
			if rest, ok := strings.CutPrefix(keyword, p); ok && rest != "" {
				words = p + " " + rest
				break
			}
		}
	}
	return cases.Title(language.English).String(words)
}

var defaultPalette = sync.OnceValue(func() Palette {
	p := make(Palette, 0, len(colornames.Names))
	seen := make(map[Color]bool, len(colornames.Names))

	// colornames.Names is sorted, so aliases such as "aqua"/"cyan" keep the
	// alphabetically first spelling.
	for _, name := range colornames.Names {
		c := FromColor(colornames.Map[name])
		if seen[c] {
			continue
		}
		seen[c] = true
		p = append(p, PaletteEntry{Name: DisplayName(name), Color: c})
	}
	return p
})

// DefaultPalette returns the SVG 1.1 named colors with display names,
// one entry per distinct color. The returned slice is a copy.
func DefaultPalette() Palette {
	return slices.Clone(defaultPalette())
}

var defaultNamer = sync.OnceValue(func() *PaletteNamer {
	return NewPaletteNamer(defaultPalette())
})

// PaletteNamer names a color after its nearest palette entry.
// Lookups are memoized; it is safe for concurrent use.
type PaletteNamer struct {
	palette Palette
	metric  Metric
	names   *cache.Sharded[uint32, string]
}

// NewPaletteNamer creates a namer over a copy of p.
// An empty palette names every color by its hex string.
func NewPaletteNamer(p Palette, opts ...PaletteNamerOption) *PaletteNamer {
	o := paletteNamerOptions{metric: MetricRGB, cacheSize: cache.DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	return &PaletteNamer{
		palette: slices.Clone(p),
		metric:  o.metric,
		names:   cache.NewSharded[uint32, string](o.cacheSize, cache.ColorHasher),
	}
}

// ColorName implements Namer.
func (n *PaletteNamer) ColorName(c Color) string {
	c.A = 255
	key := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	return n.names.GetOrCreate(key, func() string {
		e, ok := n.palette.NearestBy(c, n.metric)
		if !ok {
			return c.String()
		}
		Logger().Debug("palette lookup", "color", c.Hex(), "name", e.Name)
		return e.Name
	})
}

// Metric returns the metric the namer compares colors with.
func (n *PaletteNamer) Metric() Metric {
	return n.metric
}

// Palette returns a copy of the namer's palette.
func (n *PaletteNamer) Palette() Palette {
	return slices.Clone(n.palette)
}

// CacheStats reports the hit rate of the name cache.
func (n *PaletteNamer) CacheStats() cache.Stats {
	return n.names.Stats()
}

// paletteFile is the YAML layout of a palette:
//
//	colors:
//	  - name: Brand Red
//	    hex: "#C8102E"
type paletteFile struct {
	Colors []paletteFileEntry `yaml:"colors" validate:"required,min=1,dive"`
}

type paletteFileEntry struct {
	Name string `yaml:"name" validate:"required,max=100"`
	Hex  string `yaml:"hex" validate:"required,argbhex"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func paletteValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("argbhex", func(fl validator.FieldLevel) bool {
			_, err := ParseHex(fl.Field().String())
			return err == nil
		})
		validateInst = v
	})
	return validateInst
}

// LoadPalette reads a YAML palette. Entries keep file order.
// Malformed or invalid files fail with an error wrapping ErrInvalidPalette.
func LoadPalette(r io.Reader) (Palette, error) {
	var f paletteFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidPalette)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidPalette, err)
	}

	if err := paletteValidator().Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPalette, err)
	}

	p := make(Palette, 0, len(f.Colors))
	for _, e := range f.Colors {
		c, err := ParseHex(e.Hex)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPalette, err)
		}
		p = append(p, PaletteEntry{Name: e.Name, Color: c})
	}
	return p, nil
}

// LoadPaletteFile reads a YAML palette from path.
func LoadPaletteFile(path string) (Palette, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("open palette: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	p, err := LoadPalette(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	Logger().Info("palette loaded", "path", path, "entries", len(p))
	return p, nil
}
