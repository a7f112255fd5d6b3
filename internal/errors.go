package internal

import "fmt"

// InvalidInputError reports a point that cannot take part in a computation:
// either the point itself is missing, or one of its coordinates is not a
// finite number. Index is the position of the point within its polygon.
type InvalidInputError struct {
	Index  int
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid point at index %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid point at index %d: %s coordinate %s", e.Index, e.Field, e.Reason)
}

func missingPoint(index int) *InvalidInputError {
	return &InvalidInputError{Index: index, Reason: "point is missing"}
}

func missingCoordinate(index int, field string) *InvalidInputError {
	return &InvalidInputError{Index: index, Field: field, Reason: "is missing"}
}

func nonNumericCoordinate(index int, field string, value interface{}) *InvalidInputError {
	return &InvalidInputError{Index: index, Field: field, Reason: fmt.Sprintf("is not a finite number: %v", value)}
}

// OverflowError reports a metric that left the range of float64 even though
// every coordinate was finite.
type OverflowError struct {
	Metric string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s overflows float64", e.Metric)
}
