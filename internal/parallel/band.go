// Package parallel schedules row-banded bitmap synthesis on a worker pool.
//
// A bitmap of H rows is cut into at most N contiguous bands of whole rows.
// Bands never share rows, so workers write disjoint slices of one pixel
// buffer without locking.
package parallel

// Band is a half-open range of rows [Start, End).
type Band struct {
	Start, End int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.End - b.Start
}

// Bands splits rows into at most n contiguous bands of near-equal height.
// Earlier bands take the remainder rows. It returns nil when rows <= 0 and
// treats n <= 0 as 1.
func Bands(rows, n int) []Band {
	if rows <= 0 {
		return nil
	}
	n = max(1, min(n, rows))

	bands := make([]Band, n)
	base, extra := rows/n, rows%n
	start := 0
	for i := range bands {
		h := base
		if i < extra {
			h++
		}
		bands[i] = Band{Start: start, End: start + h}
		start += h
	}
	return bands
}
