// Package dsu implements a disjoint-set (union-find) forest over the dense
// ID range [0, n) with path compression and union by size.
//
// Invariants:
//
//   - Following parent links from any ID terminates at a root r with parent[r] == r.
//   - size[r] at a root equals the number of IDs in r's tree. Sizes stored at
//     non-root entries are stale and never read; Size always resolves the root first.
//   - Components() equals the number of distinct roots; it starts at n and
//     drops by one on every Union that returns true.
//
// Complexity: Find and Union run in O(α(n)) amortized; Partition is O(n·α(n)).
package dsu
