package colorkit

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// BytesPerPixel is the size of one BGRA pixel.
const BytesPerPixel = 4

// MaxPixels bounds the pixels one synthesis call may allocate, summed over
// all layers it produces. 1<<24 pixels is 64 MiB of BGRA data.
const MaxPixels = 1 << 24

// checkPixels reports an error unless layers bitmaps of width x height fit
// within MaxPixels. The product is checked before it is formed so that huge
// dimensions cannot overflow int.
func checkPixels(width, height, layers int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if width == 0 || height == 0 {
		return nil
	}
	if width > MaxPixels || height > MaxPixels/width || width*height > MaxPixels/layers {
		return fmt.Errorf("%w: %dx%d (x%d) exceeds %d pixels", ErrInvalidDimensions, width, height, layers, MaxPixels)
	}
	return nil
}

// Bitmap is a BGRA pixel buffer with premultiplied alpha.
// Rows run top to bottom, pixels left to right, with no row padding.
type Bitmap struct {
	width  int
	height int
	data   []uint8
}

// NewBitmap creates a transparent bitmap with the given dimensions.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*BytesPerPixel),
	}
}

// Width returns the width of the bitmap.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap.
func (b *Bitmap) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *Bitmap) Stride() int {
	return b.width * BytesPerPixel
}

// Data returns the raw BGRA bytes. The slice aliases the bitmap.
func (b *Bitmap) Data() []uint8 {
	return b.data
}

// PixelAt returns the premultiplied pixel at (x, y) as a Color
// (channels unchanged, so R, G and B are already scaled by A).
// Out-of-range coordinates return the zero Color.
func (b *Bitmap) PixelAt(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Color{}
	}
	i := (y*b.width + x) * BytesPerPixel
	return Color{B: b.data[i+0], G: b.data[i+1], R: b.data[i+2], A: b.data[i+3]}
}

// setPixel writes a premultiplied pixel.
func (b *Bitmap) setPixel(x, y int, c Color) {
	i := (y*b.width + x) * BytesPerPixel
	b.data[i+0] = c.B
	b.data[i+1] = c.G
	b.data[i+2] = c.R
	b.data[i+3] = c.A
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	p := b.PixelAt(x, y)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.RGBAModel
}

// ToImage converts the bitmap to an image.RGBA (also premultiplied).
func (b *Bitmap) ToImage() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for i := 0; i < len(b.data); i += BytesPerPixel {
		img.Pix[i+0] = b.data[i+2]
		img.Pix[i+1] = b.data[i+1]
		img.Pix[i+2] = b.data[i+0]
		img.Pix[i+3] = b.data[i+3]
	}
	return img
}

// Encode writes the bitmap as "png" or "bmp".
func (b *Bitmap) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, b.ToImage())
	case "bmp":
		return bmp.Encode(w, b.ToImage())
	default:
		return unsupportedFormat(format)
	}
}

func unsupportedFormat(format string) error {
	return fmt.Errorf("colorkit: unsupported image format %q", format)
}

// SavePNG saves the bitmap to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	return b.save(path, "png")
}

// SaveBMP saves the bitmap to a BMP file.
func (b *Bitmap) SaveBMP(path string) error {
	return b.save(path, "bmp")
}

// Save picks the format from the file extension (.png or .bmp).
func (b *Bitmap) Save(path string) error {
	return b.save(path, strings.TrimPrefix(filepath.Ext(path), "."))
}

func (b *Bitmap) save(path, format string) (err error) {
	if f := strings.ToLower(format); f != "png" && f != "bmp" {
		return unsupportedFormat(format)
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return b.Encode(f, format)
}
