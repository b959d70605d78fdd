// Package edges enumerates every unordered pair of points as a weighted
// edge and returns them in a fully deterministic ascending order.
//
// What:
//
//   - Edge{A, B, Weight} with A < B and Weight = squared Euclidean distance.
//   - Enumerate materializes all N·(N−1)/2 edges and sorts them by
//     (Weight, A, B). Consumers that replay the sequence (union-find
//     policies) depend on this exact order, so ties never depend on
//     sort stability or goroutine scheduling.
//
// Parallelism:
//
//   - WithWorkers(n) with n > 1 splits weight computation by source row
//     across an errgroup. Each pair (i, j) is written to the fixed slot
//     Index(n, i, j), so the unsorted buffer is identical to the sequential
//     one. Sorting always happens on the calling goroutine.
//
// Complexity:
//
//   - Time:   O(N² log N) (sort dominates).
//   - Memory: O(N²) for the materialized edge list.
package edges
