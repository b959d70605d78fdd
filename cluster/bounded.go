package cluster

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/junction/dsu"
	"github.com/katalvlaran/junction/edges"
	"github.com/katalvlaran/junction/point"
)

// Bounded builds a forest over n points and applies Union to the first
// budget edges of es. Every edge in the budget is spent, including those
// whose endpoints are already joined. A budget beyond len(es) is clamped.
func Bounded(es []edges.Edge, n, budget int) *dsu.Forest {
	f := dsu.New(n)
	budget = max(0, min(budget, len(es)))
	for _, e := range es[:budget] {
		f.Union(e.A, e.B)
	}

	return f
}

// TopProduct multiplies the k largest values of sizes. sizes is not modified.
// It returns ErrInsufficientClusters when fewer than k sizes are present.
func TopProduct(sizes []int, k int) (int64, error) {
	if k < 1 {
		return 0, ErrInvalidTopK
	}
	if len(sizes) < k {
		return 0, errors.Wrapf(ErrInsufficientClusters, "need %d clusters, have %d", k, len(sizes))
	}

	sorted := slices.Clone(sizes)
	slices.SortFunc(sorted, func(a, b int) int { return cmp.Compare(b, a) })

	product := int64(1)
	for _, s := range sorted[:k] {
		product *= int64(s)
	}

	return product, nil
}

// ClusterBounded joins the budget closest pairs of pts and returns the
// product of the sizes of the largest clusters (three unless WithTopK says
// otherwise).
//
// Steps:
//  1. Validate options, budget and point count; nothing is allocated on failure.
//  2. Enumerate and sort all pairwise edges.
//  3. Replay the first budget edges through a fresh forest (Bounded).
//  4. Take the partition snapshot and multiply its TopK largest sizes.
//
// Errors: ErrInvalidTopK, ErrNegativeBudget, ErrInsufficientPoints,
// ErrInsufficientClusters.
func ClusterBounded(pts []point.Point, budget int, opts ...Option) (int64, error) {
	o := buildOptions(opts)
	if o.TopK < 1 {
		return 0, errors.Wrapf(ErrInvalidTopK, "got %d", o.TopK)
	}
	if budget < 0 {
		return 0, errors.Wrapf(ErrNegativeBudget, "got %d", budget)
	}
	if len(pts) < o.TopK {
		return 0, errors.Wrapf(ErrInsufficientPoints,
			"bounded clustering needs at least %d points, got %d", o.TopK, len(pts))
	}

	es := edges.Enumerate(pts, edges.WithWorkers(o.Workers))
	if budget > len(es) {
		o.Logger.Debug("budget exceeds edge count, clamping",
			zap.Int("budget", budget), zap.Int("edges", len(es)))
	}

	f := Bounded(es, len(pts), budget)
	sizes := f.Partition()
	o.Logger.Debug("bounded clustering finished",
		zap.Int("points", len(pts)),
		zap.Int("edges", len(es)),
		zap.Int("budget", budget),
		zap.Int("clusters", len(sizes)),
	)

	product, err := TopProduct(sizes, o.TopK)
	if err != nil {
		return 0, errors.Wrapf(err, "after %d of %d edges", min(budget, len(es)), len(es))
	}

	return product, nil
}
