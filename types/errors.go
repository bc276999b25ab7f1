package types

import "errors"

// ErrInvalidLength is returned when a byte slice passed to a FromBytes
// constructor does not match the fixed width of the target type.
var ErrInvalidLength = errors.New("dsf-core: invalid length for fixed-width type")
