package internal

import "math"

// Perimeter and area treat the point sequence as a closed loop: point i is
// joined to point (i+1) mod n, so the last point connects back to the first.
// Fewer than two points enclose nothing and both metrics come out as zero.

func validate(points []*Point) {
	for i, p := range points {
		if p == nil {
			throw(missingPoint(i))
		}
		checkCoordinate(i, "x", p.X)
		checkCoordinate(i, "y", p.Y)
	}
}

func checkCoordinate(index int, field string, value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		throw(nonNumericCoordinate(index, field, value))
	}
}

func perimeter(points []*Point) float64 {
	var total float64
	for i, p := range points {
		total += Distance(p, points[CircularIndex(i+1, len(points))])
	}
	checkFinite("perimeter", total)
	return total
}

// Shoelace sum of x_i*y_{i+1} - y_i*x_{i+1}. Positive for counterclockwise
// loops in a y-up system. The sum is translation invariant, so every point is
// taken relative to the first to keep the products small.
func doubleSignedArea(points []*Point) float64 {
	if len(points) < 3 {
		return 0
	}
	origin := points[0]
	var sum float64
	for i, p := range points {
		next := points[CircularIndex(i+1, len(points))]
		sum += (p.X-origin.X)*(next.Y-origin.Y) - (p.Y-origin.Y)*(next.X-origin.X)
	}
	checkFinite("area", sum)
	return sum
}

// Finite coordinates can still overflow once they are subtracted, multiplied
// and summed.
func checkFinite(metric string, value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		throw(&OverflowError{Metric: metric})
	}
}

// Relative to the extent of the loop, so tiny polygons keep their winding and
// huge ones don't pick one up from rounding noise. Squared along with the
// extent, which keeps the bound finite for any finite extent.
const windingTolerance = 1e-6

func winding(points []*Point, doubleArea float64) Winding {
	if math.IsNaN(doubleArea) || math.IsInf(doubleArea, 0) {
		return Degenerate
	}
	minX, minY, maxX, maxY := PolygonList{{Points: points}}.Bounds()
	bound := windingTolerance * math.Max(maxX-minX, maxY-minY)
	switch {
	case math.Abs(doubleArea) <= bound*bound:
		return Degenerate
	case doubleArea > 0:
		return CounterClockwise
	default:
		return Clockwise
	}
}

// Validate reports the first missing point or non-finite coordinate.
func Validate(points []*Point) (err error) {
	defer recoverInto(&err)
	validate(points)
	return nil
}

// Perimeter is the total boundary length of the closed loop.
func Perimeter(points []*Point) (result float64, err error) {
	defer recoverInto(&err)
	validate(points)
	return perimeter(points), nil
}

// Area is the enclosed area by the shoelace formula, independent of winding.
// Self-intersecting loops get the formula's value, which is not their visual
// area.
func Area(points []*Point) (result float64, err error) {
	defer recoverInto(&err)
	validate(points)
	return math.Abs(doubleSignedArea(points)) / 2, nil
}

// SignedArea keeps the sign of the shoelace sum: positive for counterclockwise.
func SignedArea(points []*Point) (result float64, err error) {
	defer recoverInto(&err)
	validate(points)
	return doubleSignedArea(points) / 2, nil
}

// Measure validates once and computes every metric.
func Measure(points []*Point) (result Metrics, err error) {
	defer recoverInto(&err)
	validate(points)
	doubleArea := doubleSignedArea(points)
	return Metrics{
		Points:     len(points),
		Perimeter:  perimeter(points),
		Area:       math.Abs(doubleArea) / 2,
		SignedArea: doubleArea / 2,
		Winding:    winding(points, doubleArea),
	}, nil
}

func (poly Polygon) Perimeter() (float64, error) {
	return Perimeter(poly.Points)
}

func (poly Polygon) Area() (float64, error) {
	return Area(poly.Points)
}

func (poly Polygon) Measure() (Metrics, error) {
	return Measure(poly.Points)
}

// A polygon with bad points is neither clockwise nor counterclockwise.
func IsCCW(poly *Polygon) bool {
	m, err := poly.Measure()
	return err == nil && m.Winding == CounterClockwise
}

func IsCW(poly *Polygon) bool {
	m, err := poly.Measure()
	return err == nil && m.Winding == Clockwise
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Name: poly.Name}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Rotate returns the same loop starting at point k. Negative k counts back
// from the end.
func (poly Polygon) Rotate(k int) Polygon {
	n := len(poly.Points)
	newPoly := Polygon{Name: poly.Name, Points: make([]*Point, n)}
	for i := range poly.Points {
		newPoly.Points[i] = poly.Points[CircularIndex(i+k, n)]
	}
	return newPoly
}

// Edges of the closed loop, in point order. A single point yields one
// zero-length edge, matching the perimeter convention.
func (poly Polygon) Edges() []Segment {
	n := len(poly.Points)
	edges := make([]Segment, 0, n)
	for i, p := range poly.Points {
		edges = append(edges, Segment{p, poly.Points[CircularIndex(i+1, n)]})
	}
	return edges
}

func (poly Polygon) EdgeLengths() (lengths []float64, err error) {
	defer recoverInto(&err)
	validate(poly.Points)
	for _, edge := range poly.Edges() {
		lengths = append(lengths, edge.Length())
	}
	return lengths, nil
}

// Centroid is the vertex average. It anchors labels, so it only needs to land
// somewhere sensible, not at the center of mass.
func (poly Polygon) Centroid() Point {
	var c Point
	var count float64
	for _, p := range poly.Points {
		if p == nil {
			continue
		}
		c.X += p.X
		c.Y += p.Y
		count++
	}
	if count == 0 {
		return c
	}
	return Point{X: c.X / count, Y: c.Y / count}
}

// Bounds of every non-nil point in the list. An empty list has zero bounds.
func (pl PolygonList) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, poly := range pl {
		for _, p := range poly.Points {
			if p == nil {
				continue
			}
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}

// Validate every polygon, reporting the first failure.
func (pl PolygonList) Validate() (err error) {
	defer recoverInto(&err)
	for _, poly := range pl {
		validate(poly.Points)
	}
	return nil
}

// Area of a whole list, where holes wind opposite to the solid polygons that
// contain them. The signed areas are summed before taking the magnitude, so a
// clockwise hole inside a counterclockwise outline is subtracted.
func (pl PolygonList) Area() (result float64, err error) {
	defer recoverInto(&err)
	var doubleArea float64
	for _, poly := range pl {
		validate(poly.Points)
		doubleArea += doubleSignedArea(poly.Points)
	}
	checkFinite("area", doubleArea)
	return math.Abs(doubleArea) / 2, nil
}
