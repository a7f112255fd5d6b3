// Perimeter and area for simple polygons.
//
// A polygon is an ordered list of points treated as a closed loop: the last
// point connects back to the first. Perimeter sums the edge lengths; area uses
// the shoelace formula and does not depend on winding direction. Empty and
// single point polygons measure zero. A missing point or a coordinate that is
// not a finite number is reported as an *InvalidInputError naming its index,
// never silently turned into NaN.
//
// Every function here is pure and safe to call from multiple goroutines.
package polymetric

import (
	"io"

	"github.com/osuushi/polymetric/internal"
)

type Point = internal.Point
type Polygon = internal.Polygon
type PolygonList = internal.PolygonList
type Metrics = internal.Metrics
type Winding = internal.Winding
type InvalidInputError = internal.InvalidInputError
type OverflowError = internal.OverflowError

const (
	Degenerate       = internal.Degenerate
	CounterClockwise = internal.CounterClockwise
	Clockwise        = internal.Clockwise
)

// Perimeter is the total length of the closed loop through points.
func Perimeter(points []*Point) (float64, error) {
	return internal.Perimeter(points)
}

// Area is the unsigned shoelace area enclosed by points.
func Area(points []*Point) (float64, error) {
	return internal.Area(points)
}

// Measure computes perimeter, area and winding with a single validation pass.
func Measure(points []*Point) (Metrics, error) {
	return internal.Measure(points)
}

// Validate reports the first missing point or non-finite coordinate.
func Validate(points []*Point) error {
	return internal.Validate(points)
}

// ReducePoints drops every point closer than threshold to the point before it.
func ReducePoints(points []*Point, threshold float64) ([]*Point, error) {
	return internal.ReducePoints(points, threshold)
}

// ReadPolygons reads "x y" lines, with a blank line between polygons.
func ReadPolygons(in io.Reader) (PolygonList, error) {
	return internal.ReadPolygons(in)
}

// ReadSVG reads every <polygon> element of an svg document.
func ReadSVG(in io.Reader) (PolygonList, error) {
	return internal.ReadSVG(in)
}
