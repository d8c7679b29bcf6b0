package poly

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched with errors.Is by every argument check in this
// package.
var ErrInvalidInput = errors.New("poly: invalid input")

var (
	errNegativePower  = fmt.Errorf("%w: negative power", ErrInvalidInput)
	errNegativeExp    = fmt.Errorf("%w: negative exponent", ErrInvalidInput)
	errTooFewSamples  = fmt.Errorf("%w: at least 2 samples are required", ErrInvalidInput)
	errNaNArgument    = fmt.Errorf("%w: NaN argument", ErrInvalidInput)
	errPointsMismatch = fmt.Errorf("%w: points size mismatch", ErrInvalidInput)
	errNonUniqueXs    = fmt.Errorf("%w: non-unique x values", ErrInvalidInput)
	errNegativeIndex  = fmt.Errorf("%w: negative coefficient index", ErrInvalidInput)
)
