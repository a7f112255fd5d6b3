package internal

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Text input has newline separated points in the form "x y" (a comma works as
// well as a space), with each polygon separated by an extra newline. Lines
// starting with # are comments.
func ReadPolygons(in io.Reader) (PolygonList, error) {
	polygons := PolygonList{}
	scanner := bufio.NewScanner(in)
	points := []*Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, Polygon{Points: points})
				points = []*Point{}
			}
			continue
		}

		point, err := parsePoint(line, len(points))
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d, line %d", len(polygons), lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, Polygon{Points: points})
	}
	return polygons, nil
}

func parsePoint(line string, index int) (*Point, error) {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	switch {
	case len(parts) == 1:
		return nil, missingCoordinate(index, "y")
	case len(parts) > 2:
		return nil, &InvalidInputError{Index: index, Reason: "expected 2 coordinates, got " + strconv.Itoa(len(parts))}
	}
	x, err := parseCoordinate(parts[0], index, "x")
	if err != nil {
		return nil, err
	}
	y, err := parseCoordinate(parts[1], index, "y")
	if err != nil {
		return nil, err
	}
	return &Point{X: x, Y: y}, nil
}

// ParseFloat happily accepts "NaN" and "Inf", neither of which can be
// measured, so those are rejected along with anything unparseable.
func parseCoordinate(s string, index int, field string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, nonNumericCoordinate(index, field, strconv.Quote(s))
	}
	return v, nil
}
