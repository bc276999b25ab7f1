// Package wire provides the fixed-width integer read/write primitives and
// 4-byte alignment handling every other codec package in this module
// builds on: a Writer over a mutable []byte and a Reader over an
// immutable []byte, both bounds-checked on every call.
//
// Writer and Reader never panic on overrun; they return ErrBufferTooSmall
// or ErrTruncated respectively, so a caller can size a buffer, attempt an
// encode, and grow on failure without recovering from a panic.
package wire
