package edges

import (
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/junction/point"
)

// Enumerate returns every unordered pair of pts as an Edge, sorted ascending
// by (Weight, A, B). Point IDs are taken from slice positions, so pts[i]
// is always vertex i regardless of its ID field.
//
// Steps:
//  1. Allocate Count(n) slots.
//  2. Fill slot Index(n, i, j) with (i, j, d²) for every i < j, sequentially
//     or split by row across workers.
//  3. Sort the slice with Compare on the calling goroutine.
//
// Complexity: O(N² log N) time, O(N²) memory.
func Enumerate(pts []point.Point, opts ...Option) []Edge {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(pts)
	out := make([]Edge, Count(n))
	if len(out) == 0 {
		return out
	}

	if o.Workers > 1 {
		fillParallel(pts, out, o.Workers)
	} else {
		fillRows(pts, out, 0, n)
	}

	slices.SortFunc(out, Compare)

	return out
}

// fillRows writes all pairs whose lower index lies in [start, end).
func fillRows(pts []point.Point, out []Edge, start, end int) {
	n := len(pts)
	for i := start; i < end; i++ {
		k := Index(n, i, i+1)
		for j := i + 1; j < n; j++ {
			out[k] = Edge{A: i, B: j, Weight: pts[i].SquaredDistance(pts[j])}
			k++
		}
	}
}

// fillParallel splits the rows into contiguous ranges, one per worker.
// Ranges never overlap in out, so no synchronization beyond Wait is needed.
func fillParallel(pts []point.Point, out []Edge, workers int) {
	n := len(pts)
	if workers > n {
		workers = n
	}
	rowsPerWorker := (n + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		if start >= n {
			break
		}
		end := min(start+rowsPerWorker, n)
		g.Go(func() error {
			fillRows(pts, out, start, end)
			return nil
		})
	}
	// Workers never fail; Wait is only a barrier here.
	_ = g.Wait()
}
