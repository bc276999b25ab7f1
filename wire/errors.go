package wire

import "errors"

var (
	// ErrBufferTooSmall is returned by Writer methods when the
	// destination buffer has no room for the requested write.
	ErrBufferTooSmall = errors.New("dsf-core: buffer too small")

	// ErrTruncated is returned by Reader methods when fewer bytes remain
	// than the requested read needs.
	ErrTruncated = errors.New("dsf-core: truncated input")

	// ErrBadAlignment is returned by Reader.SkipPad when a padding byte
	// is non-zero.
	ErrBadAlignment = errors.New("dsf-core: misaligned region")
)
