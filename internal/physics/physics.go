// Package physics provides the overlap tests used by collision and scoring.
package physics

// DistanceSquared returns the squared distance between two points.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap reports whether two circles overlap.
// Touching circles (distance == r1+r2) do not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// SpanOverlap reports whether the open interval (center-radius, center+radius)
// intersects the open band (start, start+thickness).
// Used for circle-bounding-box against laser band tests along one axis.
func SpanOverlap(center, radius, start, thickness float64) bool {
	return center+radius > start && center-radius < start+thickness
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
