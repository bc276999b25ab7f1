// Package base implements the container codec shared by every page and
// message: the fixed 12-byte header plus 32-byte id, the data/secure-
// options/public-options regions, the encrypt-then-sign pipeline on
// encode and verify-then-decrypt on decode.
//
// Base deals only in raw region bytes; it has no notion of option kinds
// or page/message semantics. The page and message packages serialise
// their option lists with the options package before calling Encode, and
// parse the raw regions Decode returns afterward. This split keeps Base
// able to satisfy the byte-identical re-emission requirement trivially —
// it always carries the region bytes forward verbatim, including any
// options it could not itself interpret.
package base
