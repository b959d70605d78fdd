package dsu

// Forest is a disjoint-set forest over IDs [0, n). The zero value is an
// empty forest; use New to create one with n singletons.
type Forest struct {
	parent     []int
	size       []int
	components int
}

// New returns a forest of n singleton sets. Negative n yields an empty forest.
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		parent:     make([]int, n),
		size:       make([]int, n),
		components: n,
	}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f
}

// Len returns the number of elements in the forest.
func (f *Forest) Len() int { return len(f.parent) }

// Components returns the number of disjoint sets currently in the forest.
func (f *Forest) Components() int { return f.components }

// Find returns the root of the set containing i and points every node on
// the visited path directly at that root.
func (f *Forest) Find(i int) int {
	root := i
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[i] != root {
		i, f.parent[i] = f.parent[i], root
	}

	return root
}

// Union merges the sets containing i and j. It returns false, leaving the
// forest untouched, when both are already in the same set. Otherwise the
// root with the strictly smaller size is attached under the other root
// (on equal sizes j's root goes under i's root) and Union returns true.
func (f *Forest) Union(i, j int) bool {
	ri, rj := f.Find(i), f.Find(j)
	if ri == rj {
		return false
	}
	if f.size[ri] < f.size[rj] {
		ri, rj = rj, ri
	}
	f.parent[rj] = ri
	f.size[ri] += f.size[rj]
	f.components--

	return true
}

// Connected reports whether i and j belong to the same set.
func (f *Forest) Connected(i, j int) bool {
	return f.Find(i) == f.Find(j)
}

// Size returns the number of elements in the set containing i.
func (f *Forest) Size(i int) int {
	return f.size[f.Find(i)]
}

// Partition returns the size of every set, one entry per distinct root,
// ordered by the smallest ID of each set.
func (f *Forest) Partition() []int {
	seen := make([]bool, len(f.parent))
	sizes := make([]int, 0, f.components)
	for i := range f.parent {
		r := f.Find(i)
		if seen[r] {
			continue
		}
		seen[r] = true
		sizes = append(sizes, f.size[r])
	}

	return sizes
}
