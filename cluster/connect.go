package cluster

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/junction/dsu"
	"github.com/katalvlaran/junction/edges"
	"github.com/katalvlaran/junction/point"
)

// Connect runs Kruskal's algorithm over es (already sorted) on n points and
// stops at the first union that leaves a single cluster. Redundant edges
// are read and skipped. It returns false when n < 2 or es runs out before
// the points are connected.
//
// Complexity: O(E·α(n)) over the consumed prefix of es.
func Connect(es []edges.Edge, n int) (Merge, bool) {
	var m Merge
	if n < 2 {
		return m, false
	}

	f := dsu.New(n)
	for _, e := range es {
		m.Consumed++
		if !f.Union(e.A, e.B) {
			continue
		}
		m.Accepted++
		m.Edge = e
		if f.Components() == 1 {
			return m, true
		}
	}

	return m, false
}

// ClusterUntilConnected joins the closest pairs of pts until every point is
// in one cluster and returns metric applied to the two points of the final
// join, in (A, B) order.
//
// Errors: ErrNilMetric, ErrInsufficientPoints.
func ClusterUntilConnected(pts []point.Point, metric Metric, opts ...Option) (int64, error) {
	o := buildOptions(opts)
	if metric == nil {
		return 0, ErrNilMetric
	}
	if len(pts) < 2 {
		return 0, errors.Wrapf(ErrInsufficientPoints,
			"completion clustering needs at least 2 points, got %d", len(pts))
	}

	es := edges.Enumerate(pts, edges.WithWorkers(o.Workers))
	m, ok := Connect(es, len(pts))
	if !ok {
		// A complete edge set always connects n ≥ 2 points.
		return 0, errors.AssertionFailedf("cluster: %d points still disconnected after %d edges", len(pts), m.Consumed)
	}

	o.Logger.Debug("completion clustering finished",
		zap.Int("points", len(pts)),
		zap.Int("edges", len(es)),
		zap.Int("consumed", m.Consumed),
		zap.Stringer("last", m.Edge),
	)

	return metric(pts[m.Edge.A], pts[m.Edge.B]), nil
}
