package internal

import (
	"io"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// ReadSVG collects every <polygon> element in the document. This is not a
// full svg reader: transforms, <path> and <polyline> are ignored. The id
// attribute, when present, names the polygon.
//
// Points are kept in document order. SVG is y-down, so a loop that looks
// counterclockwise on screen comes back clockwise; areas are unaffected.
func ReadSVG(in io.Reader) (PolygonList, error) {
	rootEl, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := PolygonList{}
	for i, polygonEl := range rootEl.FindAll("polygon") {
		points, err := parsePointsAttribute(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "svg polygon %d", i)
		}
		polygons = append(polygons, Polygon{Name: polygonEl.Attributes["id"], Points: points})
	}
	return polygons, nil
}

// The points attribute is a flat list of numbers separated by whitespace
// and/or commas, read in x,y pairs.
func parsePointsAttribute(attr string) ([]*Point, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	points := make([]*Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		index := i / 2
		if i+1 >= len(fields) {
			return nil, missingCoordinate(index, "y")
		}
		x, err := parseCoordinate(fields[i], index, "x")
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(fields[i+1], index, "y")
		if err != nil {
			return nil, err
		}
		points = append(points, &Point{X: x, Y: y})
	}
	return points, nil
}
