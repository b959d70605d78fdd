package cluster_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/junction/cluster"
	"github.com/katalvlaran/junction/edges"
	"github.com/katalvlaran/junction/point"
)

const sample = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689`

func samplePoints(t testing.TB) []point.Point {
	t.Helper()
	pts, err := point.ParseString(sample)
	require.NoError(t, err)

	return pts
}

func randomPoints(n int, seed int64) []point.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]point.Point, n)
	for i := range pts {
		pts[i] = point.New(i, int64(r.Intn(2001)-1000), int64(r.Intn(2001)-1000), int64(r.Intn(2001)-1000))
	}

	return pts
}

// TestClusterBounded_Sample joins the ten closest pairs of the sample:
// clusters of 5, 4, 2 and 2 remain alongside seven singletons.
func TestClusterBounded_Sample(t *testing.T) {
	pts := samplePoints(t)

	got, err := cluster.ClusterBounded(pts, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(40), got)

	f := cluster.Bounded(edges.Enumerate(pts), len(pts), 10)
	assert.Equal(t, 11, f.Components())
	sizes := f.Partition()
	slices.Sort(sizes)
	slices.Reverse(sizes)
	assert.Equal(t, []int{5, 4, 2, 2, 1, 1, 1, 1, 1, 1, 1}, sizes)
}

// TestClusterBounded_BudgetClampedToOneCluster: the sample only has 190
// edges, so a budget of 1000 connects everything and three sizes cannot be
// multiplied.
func TestClusterBounded_BudgetClampedToOneCluster(t *testing.T) {
	_, err := cluster.ClusterBounded(samplePoints(t), 1000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cluster.ErrInsufficientClusters))

	got, err := cluster.ClusterBounded(samplePoints(t), 1000, cluster.WithTopK(1))
	require.NoError(t, err)
	assert.Equal(t, int64(20), got)
}

// TestClusterBounded_RedundantEdgesSpendBudget uses a triangle whose third
// edge is redundant; it must still use up one slot of the budget.
func TestClusterBounded_RedundantEdgesSpendBudget(t *testing.T) {
	pts := []point.Point{
		point.New(0, 0, 0, 0),
		point.New(1, 1, 0, 0),
		point.New(2, 0, 1, 0),
		point.New(3, 100, 0, 0),
		point.New(4, 200, 0, 0),
	}

	got, err := cluster.ClusterBounded(pts, 3, cluster.WithTopK(2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), got) // {0,1,2} × {3}

	got, err = cluster.ClusterBounded(pts, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got) // 3 × 1 × 1
}

func TestClusterBounded_ZeroBudget(t *testing.T) {
	got, err := cluster.ClusterBounded(samplePoints(t), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestClusterBounded_Errors(t *testing.T) {
	pts := samplePoints(t)

	_, err := cluster.ClusterBounded(pts, -1)
	assert.True(t, errors.Is(err, cluster.ErrNegativeBudget))

	_, err = cluster.ClusterBounded(pts[:2], 1)
	assert.True(t, errors.Is(err, cluster.ErrInsufficientPoints))

	_, err = cluster.ClusterBounded(nil, 0)
	assert.True(t, errors.Is(err, cluster.ErrInsufficientPoints))

	_, err = cluster.ClusterBounded(pts, 10, cluster.WithTopK(0))
	assert.True(t, errors.Is(err, cluster.ErrInvalidTopK))
}

func TestClusterBounded_Idempotent(t *testing.T) {
	pts := randomPoints(80, 9)
	first, err := cluster.ClusterBounded(pts, 60)
	require.NoError(t, err)
	second, err := cluster.ClusterBounded(pts, 60)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	parallel, err := cluster.ClusterBounded(pts, 60, cluster.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, first, parallel)
}

func TestTopProduct(t *testing.T) {
	sizes := []int{1, 5, 2, 4, 2}

	got, err := cluster.TopProduct(sizes, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(40), got)
	assert.Equal(t, []int{1, 5, 2, 4, 2}, sizes, "input must not be reordered")

	got, err = cluster.TopProduct(sizes, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(80), got)

	_, err = cluster.TopProduct(sizes, 6)
	assert.True(t, errors.Is(err, cluster.ErrInsufficientClusters))

	_, err = cluster.TopProduct(sizes, 0)
	assert.True(t, errors.Is(err, cluster.ErrInvalidTopK))
}

// TestClusterUntilConnected_Sample: the sample becomes one cluster when
// 216,146,977 joins 117,168,530.
func TestClusterUntilConnected_Sample(t *testing.T) {
	pts := samplePoints(t)

	got, err := cluster.ClusterUntilConnected(pts, cluster.XProduct)
	require.NoError(t, err)
	assert.Equal(t, int64(25272), got)

	m, ok := cluster.Connect(edges.Enumerate(pts), len(pts))
	require.True(t, ok)
	assert.Equal(t, 10, m.Edge.A)
	assert.Equal(t, 12, m.Edge.B)
	assert.Equal(t, len(pts)-1, m.Accepted)
	assert.LessOrEqual(t, m.Consumed, edges.Count(len(pts)))
}

func TestClusterUntilConnected_TwoPoints(t *testing.T) {
	pts := []point.Point{point.New(0, 3, 0, 0), point.New(1, 7, 4, 4)}

	got, err := cluster.ClusterUntilConnected(pts, cluster.XProduct)
	require.NoError(t, err)
	assert.Equal(t, int64(21), got)

	m, ok := cluster.Connect(edges.Enumerate(pts), len(pts))
	require.True(t, ok)
	assert.Equal(t, cluster.Merge{Edge: edges.Edge{A: 0, B: 1, Weight: 48}, Consumed: 1, Accepted: 1}, m)
}

func TestClusterUntilConnected_Errors(t *testing.T) {
	_, err := cluster.ClusterUntilConnected(samplePoints(t), nil)
	assert.True(t, errors.Is(err, cluster.ErrNilMetric))

	_, err = cluster.ClusterUntilConnected([]point.Point{point.New(0, 1, 1, 1)}, cluster.XProduct)
	assert.True(t, errors.Is(err, cluster.ErrInsufficientPoints))

	_, err = cluster.ClusterUntilConnected(nil, cluster.XProduct)
	assert.True(t, errors.Is(err, cluster.ErrInsufficientPoints))
}

func TestConnect_Degenerate(t *testing.T) {
	_, ok := cluster.Connect(nil, 1)
	assert.False(t, ok)

	// Three points but only one edge: the stream ends before connectivity.
	m, ok := cluster.Connect([]edges.Edge{{A: 0, B: 1, Weight: 1}}, 3)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Accepted)
}

// TestConnect_RandomSets checks that completion always accepts exactly n−1
// edges, skips redundant ones, and never reads past the edge list.
func TestConnect_RandomSets(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		n := 2 + int(seed)*7
		es := edges.Enumerate(randomPoints(n, seed))

		m, ok := cluster.Connect(es, n)
		require.True(t, ok)
		require.Equal(t, n-1, m.Accepted)
		require.GreaterOrEqual(t, m.Consumed, m.Accepted)
		require.LessOrEqual(t, m.Consumed, len(es))
		require.Equal(t, es[m.Consumed-1], m.Edge)
	}
}

func TestMetrics(t *testing.T) {
	a := point.New(0, -2, 1, 1)
	b := point.New(1, 5, 1, 4)
	assert.Equal(t, int64(-10), cluster.XProduct(a, b))
	assert.Equal(t, int64(58), cluster.SquaredDistance(a, b))

	got, err := cluster.ClusterUntilConnected(samplePoints(t), cluster.SquaredDistance)
	require.NoError(t, err)
	m, _ := cluster.Connect(edges.Enumerate(samplePoints(t)), 20)
	assert.Equal(t, m.Edge.Weight, got)
}

func TestMetricByName(t *testing.T) {
	m, err := cluster.MetricByName("x-product")
	require.NoError(t, err)
	assert.Equal(t, int64(6), m(point.New(0, 2, 0, 0), point.New(1, 3, 0, 0)))

	m, err = cluster.MetricByName("distance")
	require.NoError(t, err)
	assert.Equal(t, int64(1), m(point.New(0, 2, 0, 0), point.New(1, 3, 0, 0)))

	_, err = cluster.MetricByName("manhattan")
	assert.True(t, errors.Is(err, cluster.ErrUnknownMetric))
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	_, err := cluster.ClusterBounded(samplePoints(t), 500, cluster.WithLogger(logger), cluster.WithTopK(1))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("budget exceeds edge count, clamping").Len())
	finished := logs.FilterMessage("bounded clustering finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, int64(1), finished[0].ContextMap()["clusters"])

	_, err = cluster.ClusterUntilConnected(samplePoints(t), cluster.XProduct, cluster.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("completion clustering finished").Len())

	// nil leaves the default no-op logger in place.
	_, err = cluster.ClusterBounded(samplePoints(t), 10, cluster.WithLogger(nil))
	require.NoError(t, err)
}
