package colorkit

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

// Verify at compile time that Bitmap implements image.Image.
var _ image.Image = (*Bitmap)(nil)

func TestBitmap_Layout(t *testing.T) {
	b := NewBitmap(3, 2)
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", b.Width(), b.Height())
	}
	if b.Stride() != 12 {
		t.Errorf("Stride() = %d, want 12", b.Stride())
	}
	if len(b.Data()) != 24 {
		t.Errorf("len(Data()) = %d, want 24", len(b.Data()))
	}

	b.setPixel(1, 1, Color{A: 4, R: 3, G: 2, B: 1})
	i := 1*b.Stride() + 1*BytesPerPixel
	if got := b.Data()[i : i+4]; !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Errorf("pixel bytes = %v, want BGRA [1 2 3 4]", got)
	}
	if got := b.PixelAt(1, 1); got != (Color{A: 4, R: 3, G: 2, B: 1}) {
		t.Errorf("PixelAt = %v", got)
	}
	if got := b.PixelAt(-1, 5); got != (Color{}) {
		t.Errorf("PixelAt out of range = %v, want zero", got)
	}
	if got := b.At(1, 1); got != (color.RGBA{R: 3, G: 2, B: 1, A: 4}) {
		t.Errorf("At = %v", got)
	}
}

func TestBitmap_ToImage(t *testing.T) {
	b := NewBitmap(2, 1)
	b.setPixel(0, 0, Color{A: 255, R: 255})
	b.setPixel(1, 0, Color{A: 128, B: 128})

	img := b.ToImage()
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel 0 = %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{B: 128, A: 128}) {
		t.Errorf("pixel 1 = %v", got)
	}
}

func TestBitmap_EncodePNG(t *testing.T) {
	b := NewBitmap(4, 4)
	b.setPixel(2, 3, Color{A: 255, G: 255})

	var buf bytes.Buffer
	if err := b.Encode(&buf, "PNG"); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	r, g, bl, a := img.At(2, 3).RGBA()
	if r != 0 || g != 0xffff || bl != 0 || a != 0xffff {
		t.Errorf("decoded pixel = (%d, %d, %d, %d)", r, g, bl, a)
	}
}

func TestBitmap_Save(t *testing.T) {
	dir := t.TempDir()
	b := NewBitmap(2, 2)
	b.setPixel(0, 0, Color{A: 255, R: 255})

	bmpPath := filepath.Join(dir, "out.bmp")
	if err := b.Save(bmpPath); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(bmpPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v", img.Bounds())
	}

	if err := b.SavePNG(filepath.Join(dir, "out.png")); err != nil {
		t.Fatal(err)
	}

	gif := filepath.Join(dir, "out.gif")
	if err := b.Save(gif); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := os.Stat(gif); !os.IsNotExist(err) {
		t.Error("unsupported format should not create a file")
	}
}
