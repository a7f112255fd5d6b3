package internal

import (
	"embed"
	"log"
	"math"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each one is read with ReadSVG, so the loader doubles as a smoke test of the
// svg reader. If anything goes wrong, it dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) PolygonList {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	list, err := ReadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(list) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	return list
}

// Build a polygon from flat coordinate pairs.
func poly(coords ...float64) Polygon {
	if len(coords)%2 != 0 {
		log.Fatalf("odd coordinate count %d", len(coords))
	}
	points := make([]*Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		points = append(points, &Point{X: coords[i], Y: coords[i+1]})
	}
	return Polygon{Points: points}
}

// Some ad hoc code specified fixtures

const (
	starOuterRadius = 5
	starInnerRadius = 2
)

func SimpleStar() Polygon {
	var points []*Point
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = starOuterRadius
		} else {
			radius = starInnerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{Name: "star", Points: points}
}

// Ten identical triangles fan out from the center, each spanning 36 degrees
// between an outer and an inner vertex.
func simpleStarArea() float64 {
	return 10 * 0.5 * starOuterRadius * starInnerRadius * math.Sin(math.Pi/5)
}

func simpleStarPerimeter() float64 {
	edge := math.Sqrt(starOuterRadius*starOuterRadius + starInnerRadius*starInnerRadius -
		2*starOuterRadius*starInnerRadius*math.Cos(math.Pi/5))
	return 10 * edge
}

func SquareWithHole() PolygonList {
	outer := poly(-5, -5, 5, -5, 5, 5, -5, 5)
	hole := poly(-2, -2, -2, 2, 2, 2, 2, -2)
	return PolygonList{outer, hole}
}
