package internal

import "github.com/pkg/errors"

// Validation happens inside the point loops. Rather than threading an error
// out of every helper, we panic with a metricsPanic and each exported entry
// point recovers to convert it back into an error.

type metricsPanic struct {
	err error
}

// Panic with an error built from a format string.
func fatalf(format string, args ...interface{}) {
	panic(metricsPanic{errors.Errorf(format, args...)})
}

// Panic with an existing error, typically an *InvalidInputError.
func throw(err error) {
	panic(metricsPanic{err})
}

// Anything that is not one of our own panics is re-raised untouched, so real
// bugs still crash loudly.
func HandleMetricsPanicRecover(r interface{}) error {
	if r != nil {
		if p, ok := r.(metricsPanic); ok {
			return p.err
		}
		panic(r)
	}
	return nil
}

// Deferred directly by exported functions with a named error result.
func recoverInto(err *error) {
	if recoveredErr := HandleMetricsPanicRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}
