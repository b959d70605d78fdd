package point

import "fmt"

// Point is a location in 3-D integer space. ID is the position of the point
// in the input collection and is the index used by edges and forests.
type Point struct {
	ID      int
	X, Y, Z int64
}

// New returns a Point with the given id and coordinates.
func New(id int, x, y, z int64) Point {
	return Point{ID: id, X: x, Y: y, Z: z}
}

// SquaredDistance returns the squared Euclidean distance between p and q.
// Coordinates of magnitude up to ~1e9 stay within int64.
func (p Point) SquaredDistance(q Point) int64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	dz := p.Z - q.Z

	return dx*dx + dy*dy + dz*dz
}

// String renders the point in its input form "x,y,z".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// Reindex returns a copy of pts whose IDs match their slice positions.
// Callers that assemble points by hand use it to satisfy the ID invariant.
func Reindex(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		p.ID = i
		out[i] = p
	}

	return out
}
