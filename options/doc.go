// Package options implements the TLV option codec shared by the page and
// message layers: a tagged (kind, length, payload) triple, padded to a
// 4-byte boundary on the wire, with a fixed kind table that marks each
// kind as repeating or non-repeating.
//
// Decoding is iterator-shaped: Iterator steps through a byte region
// lazily and does not support rewinding. Unknown kinds are skipped using
// their declared length (forwards compatibility); the iterator tracks how
// many it skipped so a strict caller can reject the page afterward.
package options
