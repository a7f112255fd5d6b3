package internal

// Conversions between normalized device coordinates, where both axes run from
// -1 to 1 with y pointing up, and image pixels, where the origin is the top
// left corner and y points down.

func ToImageCoordinates(points []*Point, width, height float64) (result []*Point, err error) {
	defer recoverInto(&err)
	validate(points)
	if width <= 0 || height <= 0 {
		fatalf("image size must be positive, got %vx%v", width, height)
	}
	result = make([]*Point, len(points))
	for i, p := range points {
		result[i] = &Point{
			X: (p.X + 1) / 2 * width,
			Y: (1 - p.Y) / 2 * height,
		}
	}
	return result, nil
}

func FromImageCoordinates(points []*Point, width, height float64) (result []*Point, err error) {
	defer recoverInto(&err)
	validate(points)
	if width <= 0 || height <= 0 {
		fatalf("image size must be positive, got %vx%v", width, height)
	}
	result = make([]*Point, len(points))
	for i, p := range points {
		result[i] = &Point{
			X: p.X/width*2 - 1,
			Y: (1-p.Y/height)*2 - 1,
		}
	}
	return result, nil
}
