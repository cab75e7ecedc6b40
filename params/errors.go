package params

import "errors"

var (
	// ErrMissingKey reports a parameter name absent from the dictionary.
	ErrMissingKey = errors.New("params: missing parameter")

	// ErrBadValue reports a parameter present with an unusable type.
	ErrBadValue = errors.New("params: bad parameter value")
)
