package colorkit

import (
	"context"
	"sync"
)

// Backdrop is a display slot for a checkerboard bitmap.
//
// A host asks for a new bitmap whenever the preview is resized or the checker
// color changes. Each Update cancels the synthesis still running for the slot,
// so only the most recent request can ever commit; superseded results are
// dropped without becoming visible through Bitmap.
//
// Backdrop is safe for concurrent use.
type Backdrop struct {
	opts []SynthOption

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	bitmap *Bitmap
}

// NewBackdrop creates an empty slot. opts apply to every synthesis it starts.
func NewBackdrop(opts ...SynthOption) *Backdrop {
	return &Backdrop{opts: opts}
}

// Pending is the handle of one Backdrop request.
type Pending struct {
	done   chan struct{}
	bitmap *Bitmap
	err    error
}

// Done is closed once the request has committed or failed.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the request resolves or ctx is done.
//
// A request replaced by a later Update resolves with ErrSuperseded. A request
// whose own context was cancelled resolves with that context's error. A
// zero-sized request commits and returns a nil bitmap.
func (p *Pending) Wait(ctx context.Context) (*Bitmap, error) {
	select {
	case <-p.done:
		return p.bitmap, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Update starts synthesizing a width x height checkerboard for the slot,
// cancelling any earlier request that has not committed yet.
func (b *Backdrop) Update(ctx context.Context, width, height int, checker Color) *Pending {
	ctx, cancel := context.WithCancel(ctx)

	b.mu.Lock()
	if b.cancel != nil {
		b.cancel()
	}
	b.gen++
	gen := b.gen
	b.cancel = cancel
	b.mu.Unlock()

	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		defer cancel()

		bmp, err := CheckeredBackground(ctx, width, height, checker, b.opts...)

		b.mu.Lock()
		defer b.mu.Unlock()

		if gen != b.gen {
			if err == nil {
				Logger().Warn("checkerboard discarded, slot has a newer request",
					"width", width, "height", height)
			}
			p.err = ErrSuperseded
			return
		}

		b.cancel = nil
		if err != nil {
			p.err = err
			return
		}
		b.bitmap = bmp
		p.bitmap = bmp
	}()

	return p
}

// Bitmap returns the last committed bitmap, or nil.
func (b *Backdrop) Bitmap() *Bitmap {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bitmap
}

// Close cancels any in-flight request. The committed bitmap is kept.
func (b *Backdrop) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gen++
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}
