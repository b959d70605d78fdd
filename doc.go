// Package junction clusters points in 3-D integer space by joining the
// closest pairs first.
//
// Layout:
//
//	point/    — Point, squared distance, "x,y,z" line parser
//	edges/    — all-pairs enumeration sorted by (weight, a, b), optional parallel weights
//	dsu/      — disjoint-set forest with path compression and union by size
//	cluster/  — bounded clustering (product of largest sizes after K joins)
//	            and completion clustering (metric of the join that leaves one cluster)
//	cmd/junction — command-line front end
//
// Quick example:
//
//	pts, _ := point.ParseString("162,817,812\n57,618,57\n906,360,560\n592,479,940")
//	product, _ := cluster.ClusterBounded(pts, 2)
//	last, _ := cluster.ClusterUntilConnected(pts, cluster.XProduct)
//
//	go get github.com/katalvlaran/junction
package junction
