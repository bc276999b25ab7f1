package types

import (
	"crypto/subtle"
	"encoding/hex"
)

// X25519KeyLen is the fixed width of a Curve25519 key-exchange key.
const X25519KeyLen = 32

// X25519PublicKey is a Curve25519 public key used for Diffie-Hellman key
// exchange, optionally derived from an Ed25519 PublicKey (see
// crypto.DeriveX25519PublicKey).
type X25519PublicKey [X25519KeyLen]byte

// X25519PublicKeyFromBytes copies b into a new X25519PublicKey. b must be
// exactly X25519KeyLen bytes.
func X25519PublicKeyFromBytes(b []byte) (X25519PublicKey, error) {
	var pk X25519PublicKey
	if len(b) != X25519KeyLen {
		return pk, ErrInvalidLength
	}
	copy(pk[:], b)
	return pk, nil
}

// Slice returns pk as a []byte sharing the array's backing storage.
func (pk X25519PublicKey) Slice() []byte { return pk[:] }

// Equal reports whether pk and other hold the same bytes, in constant time.
func (pk X25519PublicKey) Equal(other X25519PublicKey) bool {
	return subtle.ConstantTimeCompare(pk[:], other[:]) == 1
}

// String renders pk as lowercase hex.
func (pk X25519PublicKey) String() string { return hex.EncodeToString(pk[:]) }

// X25519PrivateKey is a clamped Curve25519 private scalar.
type X25519PrivateKey [X25519KeyLen]byte

// Slice returns sk as a []byte sharing the array's backing storage.
func (sk X25519PrivateKey) Slice() []byte { return sk[:] }

// Equal reports whether sk and other hold the same bytes, in constant time.
func (sk X25519PrivateKey) Equal(other X25519PrivateKey) bool {
	return subtle.ConstantTimeCompare(sk[:], other[:]) == 1
}
