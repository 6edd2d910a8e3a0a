package colorkit

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strconv"
	"testing"
	"time"
)

func TestCheckeredBackground_Tiles(t *testing.T) {
	checker := Color{A: 128, R: 255, G: 100, B: 0}
	tile := Color{A: 128, R: 128, G: 50, B: 0}

	bmp, err := CheckeredBackground(context.Background(), 8, 8, checker)
	if err != nil {
		t.Fatal(err)
	}
	if bmp.Width() != 8 || bmp.Height() != 8 || bmp.Stride() != 32 {
		t.Fatalf("bitmap %dx%d stride %d", bmp.Width(), bmp.Height(), bmp.Stride())
	}

	tests := []struct {
		x, y int
		want Color
	}{
		{0, 0, Color{}},
		{3, 3, Color{}},
		{4, 0, tile},
		{7, 3, tile},
		{0, 4, tile},
		{4, 4, Color{}},
		{7, 7, Color{}},
	}
	for _, tt := range tests {
		if got := bmp.PixelAt(tt.x, tt.y); got != tt.want {
			t.Errorf("PixelAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCheckeredBackground_OpaqueAndTransparent(t *testing.T) {
	opaque, err := CheckeredBackground(context.Background(), 8, 1, Color{A: 255, R: 10, G: 20, B: 30})
	if err != nil {
		t.Fatal(err)
	}
	if got := opaque.PixelAt(5, 0); got != (Color{A: 255, R: 10, G: 20, B: 30}) {
		t.Errorf("opaque tile = %v", got)
	}

	blank, err := CheckeredBackground(context.Background(), 8, 8, Color{A: 0, R: 255, G: 255, B: 255})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range blank.Data() {
		if v != 0 {
			t.Fatal("transparent checker should produce an all-zero bitmap")
		}
	}
}

func TestCheckeredBackground_Dimensions(t *testing.T) {
	ctx := context.Background()

	for _, dims := range [][2]int{{0, 10}, {10, 0}, {0, 0}} {
		bmp, err := CheckeredBackground(ctx, dims[0], dims[1], Color{A: 255})
		if bmp != nil || err != nil {
			t.Errorf("%v: got (%v, %v), want (nil, nil)", dims, bmp, err)
		}
	}

	for _, dims := range [][2]int{{-1, 10}, {10, -1}, {math.MaxInt, 2}, {math.MaxInt32, math.MaxInt32}, {MaxPixels + 1, 1}, {4097, 4096}} {
		_, err := CheckeredBackground(ctx, dims[0], dims[1], Color{A: 255})
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%v: error = %v, want ErrInvalidDimensions", dims, err)
		}
	}
}

func TestCheckeredBackground_Deterministic(t *testing.T) {
	ctx := context.Background()
	checker := Color{A: 200, R: 50, G: 150, B: 250}

	one, err := CheckeredBackground(ctx, 37, 29, checker, WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}
	many, err := CheckeredBackground(ctx, 37, 29, checker, WithWorkers(7))
	if err != nil {
		t.Fatal(err)
	}
	auto, err := CheckeredBackground(ctx, 37, 29, checker)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(one.Data(), many.Data()) || !bytes.Equal(one.Data(), auto.Data()) {
		t.Error("output depends on band count")
	}
}

func TestCheckeredBackground_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bmp, err := CheckeredBackground(ctx, 4096, 4096, Color{A: 255})
	if bmp != nil {
		t.Error("cancelled synthesis returned a bitmap")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestCheckeredBackground_CancelledMidway(t *testing.T) {
	for range 10 {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		var (
			bmp *Bitmap
			err error
		)
		go func() {
			defer close(done)
			bmp, err = CheckeredBackground(ctx, 1024, 1024, Color{A: 255, R: 255})
		}()
		cancel()
		<-done

		// Either the run finished first or it was cancelled; never both.
		if err != nil {
			if bmp != nil {
				t.Fatal("partial bitmap returned with error")
			}
			if !errors.Is(err, context.Canceled) {
				t.Fatalf("error = %v, want context.Canceled", err)
			}
		} else if bmp == nil {
			t.Fatal("nil bitmap without error")
		}
	}
}

func BenchmarkCheckeredBackground(b *testing.B) {
	ctx := context.Background()
	checker := Color{A: 255, R: 192, G: 192, B: 192}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = CheckeredBackground(ctx, 512, 512, checker)
	}
}

func TestCheckeredBackground_TooLarge(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit int")
	}
	huge := int(int64(1) << 32)

	bmp, err := CheckeredBackground(context.Background(), huge, huge, Color{A: 255})
	if bmp != nil || !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("1<<32 square = (%v, %v), want ErrInvalidDimensions", bmp, err)
	}

	// Rejected before any allocation, however soon the caller gives up.
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(time.Millisecond, cancel)
	defer cancel()
	bmp, err = CheckeredBackground(ctx, 40000, 40000, Color{A: 255})
	if bmp != nil || !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("40000x40000 = (%v, %v), want ErrInvalidDimensions", bmp, err)
	}

	bmp, err = CheckeredBackground(context.Background(), MaxPixels/4, 4, Color{A: 255})
	if err != nil || bmp.Width() != MaxPixels/4 {
		t.Errorf("exactly MaxPixels = (%v, %v)", bmp, err)
	}
}
