package colorkit

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gogpu/colorkit/internal/parallel"
)

// synthPool is shared by all synthesis calls and lives for the process.
var synthPool = sync.OnceValue(func() *parallel.WorkerPool {
	return parallel.NewWorkerPool(0)
})

// rowFiller fills row y. It must poll cancelled between pixels and return
// false as soon as it reports true.
type rowFiller func(y int, cancelled func() bool) bool

// fillRows runs fill over rows [0, height) in parallel bands.
// It returns ctx.Err() if the context was cancelled at any point before all
// rows completed; the caller then discards the partially written buffers.
func fillRows(ctx context.Context, height int, o synthOptions, fill rowFiller) error {
	var cancelled atomic.Bool
	stop := context.AfterFunc(ctx, func() { cancelled.Store(true) })
	defer stop()

	pool := synthPool()
	n := o.bands
	if n <= 0 {
		n = pool.Workers()
	}

	bands := parallel.Bands(height, n)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			for y := b.Start; y < b.End; y++ {
				if cancelled.Load() || !fill(y, cancelled.Load) {
					return
				}
			}
		}
	}
	pool.ExecuteAll(work)

	return ctx.Err()
}
