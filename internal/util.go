package internal

import "math"

// Epsilon is the bound the tests use when comparing accumulated sums.
const Epsilon = 1e-9

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Euclidean distance between two points.
func Distance(a, b *Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}

// Midpoint of the segment, used to anchor edge labels.
func (s Segment) Midpoint() Point {
	return Point{X: (s.Start.X + s.End.X) / 2, Y: (s.Start.Y + s.End.Y) / 2}
}
