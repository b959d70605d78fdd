// Package cluster groups 3-D points by repeatedly joining the closest pair
// and reports two aggregates over the resulting partition.
//
// What & Why
//
//   - Bounded clustering (Bounded, ClusterBounded): replay the first K
//     shortest edges through a union-find forest, whether or not each one
//     actually merges two clusters, then multiply the sizes of the largest
//     clusters (three by default).
//
//   - Completion clustering (Connect, ClusterUntilConnected): Kruskal's
//     minimum spanning tree construction halted as soon as a single cluster
//     remains. Only the last accepted edge matters; a Metric turns its two
//     endpoints into the reported value.
//
// Both policies share dsu.Forest and the sorted edge list from
// edges.Enumerate; they differ only in how long they consume the stream and
// what they extract afterwards.
//
// Errors
//
//   - ErrInsufficientPoints   fewer points than the policy needs
//     (top-K for bounded, 2 for completion).
//   - ErrInsufficientClusters bounded clustering ended with fewer than K clusters.
//   - ErrNegativeBudget       bounded clustering called with budget < 0.
//   - ErrNilMetric            completion clustering called without a metric.
//   - ErrInvalidTopK          WithTopK(k) with k < 1.
//   - ErrUnknownMetric        MetricByName given an unregistered name.
//
// A budget larger than the number of edges is clamped, never rejected. All
// checks run before a forest is built.
//
// Example
//
//	pts, _ := point.ParseString(input)
//	product, err := cluster.ClusterBounded(pts, 1000)
//	last, err := cluster.ClusterUntilConnected(pts, cluster.XProduct)
package cluster
