package options

import "errors"

var (
	// ErrDuplicateOption is returned when a non-repeating kind appears
	// more than once in the same option region.
	ErrDuplicateOption = errors.New("dsf-core: duplicate option")

	// ErrUnknownKind is returned by an iterator built with
	// NewStrictIterator when an unrecognised kind is encountered. The
	// lenient iterator (NewIterator) skips such options instead of
	// failing.
	ErrUnknownKind = errors.New("dsf-core: unknown option kind")

	// ErrFieldTooLong is returned on encode when an option's payload
	// does not fit in the u16 length field.
	ErrFieldTooLong = errors.New("dsf-core: option payload too long")

	// ErrBodyShapeMismatch is returned when a fixed-size option kind's
	// payload does not have the size the kind requires.
	ErrBodyShapeMismatch = errors.New("dsf-core: option payload has the wrong shape for its kind")
)
