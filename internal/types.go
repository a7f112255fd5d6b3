package internal

type Point struct {
	X float64
	Y float64
}

// Polygons hold pointers to their points, the same way the parsers hand them
// out. A nil entry is a point that was never supplied, and every metric
// rejects it rather than guessing.
type Polygon struct {
	Name   string
	Points []*Point
}

type PolygonList []Polygon

type Segment struct {
	Start *Point
	End   *Point
}

// Winding is the traversal direction implied by point order, assuming a y-up
// coordinate system.
type Winding int

const (
	Degenerate Winding = iota
	CounterClockwise
	Clockwise
)

func (w Winding) String() string {
	switch w {
	case CounterClockwise:
		return "ccw"
	case Clockwise:
		return "cw"
	default:
		return "degenerate"
	}
}

type Metrics struct {
	Points     int     `json:"points"`
	Perimeter  float64 `json:"perimeter"`
	Area       float64 `json:"area"`
	SignedArea float64 `json:"signed_area"`
	Winding    Winding `json:"-"`
}
