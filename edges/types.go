package edges

import (
	"cmp"
	"fmt"
)

// Edge is an unordered pair of point IDs with A < B and the squared
// distance between them.
type Edge struct {
	A, B   int
	Weight int64
}

// String renders the edge as "A-B(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.A, e.B, e.Weight)
}

// Compare orders edges by Weight, then A, then B. It is a total order over
// edges produced by Enumerate.
func Compare(a, b Edge) int {
	if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
		return c
	}
	if c := cmp.Compare(a.A, b.A); c != 0 {
		return c
	}

	return cmp.Compare(a.B, b.B)
}

// Less reports whether a sorts before b.
func Less(a, b Edge) bool { return Compare(a, b) < 0 }

// Count returns the number of unordered pairs among n points.
func Count(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// Index returns the position of pair (i, j), i < j, in row-major
// upper-triangle order over n points.
func Index(n, i, j int) int {
	return i*(2*n-i-1)/2 + (j - i - 1)
}

// Options configures Enumerate.
//
// Fields:
//
//	Workers int — goroutines used for weight computation; values ≤ 1 run sequentially.
type Options struct {
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers sets the number of goroutines used to compute weights.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// DefaultOptions returns sequential enumeration.
func DefaultOptions() Options {
	return Options{Workers: 1}
}
