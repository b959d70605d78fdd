package cluster

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/junction/edges"
	"github.com/katalvlaran/junction/point"
)

// Sentinel errors returned by the clustering entry points.
var (
	// ErrInsufficientPoints indicates the input has too few points for the policy.
	ErrInsufficientPoints = errors.New("cluster: insufficient points")

	// ErrInsufficientClusters indicates bounded clustering left fewer clusters
	// than the number of sizes to multiply.
	ErrInsufficientClusters = errors.New("cluster: insufficient clusters")

	// ErrNegativeBudget indicates a negative edge budget.
	ErrNegativeBudget = errors.New("cluster: budget must be non-negative")

	// ErrNilMetric indicates completion clustering was called without a metric.
	ErrNilMetric = errors.New("cluster: metric is nil")

	// ErrInvalidTopK indicates WithTopK was given a value below 1.
	ErrInvalidTopK = errors.New("cluster: top-K must be at least 1")

	// ErrUnknownMetric indicates MetricByName was given an unregistered name.
	ErrUnknownMetric = errors.New("cluster: unknown metric")
)

// DefaultTopK is the number of largest clusters multiplied by bounded clustering.
const DefaultTopK = 3

// Metric maps the two endpoints of the final merge to the reported value.
type Metric func(a, b point.Point) int64

// XProduct multiplies the x-coordinates of a and b.
func XProduct(a, b point.Point) int64 { return a.X * b.X }

// SquaredDistance returns the squared length of the final merge edge.
func SquaredDistance(a, b point.Point) int64 { return a.SquaredDistance(b) }

// metrics maps the names accepted by MetricByName to their functions.
var metrics = map[string]Metric{
	"x-product": XProduct,
	"distance":  SquaredDistance,
}

// MetricByName returns the metric registered under name: "x-product" or "distance".
func MetricByName(name string) (Metric, error) {
	m, ok := metrics[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMetric, "%q", name)
	}

	return m, nil
}

// Merge describes how completion clustering reached a single cluster.
type Merge struct {
	// Edge is the last edge whose union succeeded.
	Edge edges.Edge
	// Consumed counts edges read from the stream, redundant ones included.
	Consumed int
	// Accepted counts successful unions; n−1 once connected.
	Accepted int
}

// Options configures the clustering entry points.
//
// Fields:
//
//	Logger  *zap.Logger — debug output; defaults to a no-op logger.
//	Workers int         — forwarded to edges.WithWorkers.
//	TopK    int         — number of largest clusters multiplied by ClusterBounded.
type Options struct {
	Logger  *zap.Logger
	Workers int
	TopK    int
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the parallelism of edge weight computation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithTopK sets how many of the largest clusters ClusterBounded multiplies.
func WithTopK(k int) Option {
	return func(o *Options) {
		o.TopK = k
	}
}

// DefaultOptions returns a no-op logger, sequential enumeration and TopK = 3.
func DefaultOptions() Options {
	return Options{
		Logger:  zap.NewNop(),
		Workers: 1,
		TopK:    DefaultTopK,
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
