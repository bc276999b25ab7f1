// Package types defines the fixed-length identifier and key types shared
// by every other package in this module: Id, PublicKey, PrivateKey,
// Signature, SecretKey, RequestId, and the X25519 key-exchange pair
// derived from an Ed25519 key.
//
// Every type here wraps a fixed-size byte array rather than a slice, so a
// zero value is always a validly-shaped (if meaningless) key, and
// equality, copying, and map keys all behave like values. Conversion from
// a slice fails with ErrInvalidLength on any size mismatch; there is no
// truncating or zero-padding constructor.
package types
