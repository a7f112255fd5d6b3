package internal

import "math"

// ReducePoints thins out a traced outline. Each point is compared with the
// point that originally preceded it, and it is dropped when the two are closer
// than threshold. The first point always survives. The input slice is left
// alone.
func ReducePoints(points []*Point, threshold float64) (result []*Point, err error) {
	defer recoverInto(&err)
	if math.IsNaN(threshold) || threshold < 0 {
		fatalf("reduce threshold must be a non-negative number, got %v", threshold)
	}
	validate(points)

	if len(points) == 0 {
		return nil, nil
	}
	result = make([]*Point, 0, len(points))
	result = append(result, points[0])
	for i := 0; i < len(points)-1; i++ {
		if Distance(points[i], points[i+1]) < threshold {
			continue
		}
		result = append(result, points[i+1])
	}
	return result, nil
}

func (poly Polygon) Reduce(threshold float64) (Polygon, error) {
	points, err := ReducePoints(poly.Points, threshold)
	if err != nil {
		return Polygon{}, err
	}
	return Polygon{Name: poly.Name, Points: points}, nil
}
