package types

import (
	"crypto/subtle"
	"encoding/hex"
)

// PublicKeyLen is the fixed width of an Ed25519 public key in bytes.
const PublicKeyLen = 32

// PublicKey is an Ed25519 public signing key.
type PublicKey [PublicKeyLen]byte

// PublicKeyFromBytes copies b into a new PublicKey. b must be exactly
// PublicKeyLen bytes.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var pk PublicKey
	if len(b) != PublicKeyLen {
		return pk, ErrInvalidLength
	}
	copy(pk[:], b)
	return pk, nil
}

// Slice returns pk as a []byte sharing the array's backing storage.
func (pk PublicKey) Slice() []byte { return pk[:] }

// Equal reports whether pk and other hold the same bytes, in constant time.
func (pk PublicKey) Equal(other PublicKey) bool {
	return subtle.ConstantTimeCompare(pk[:], other[:]) == 1
}

// String renders pk as lowercase hex.
func (pk PublicKey) String() string { return hex.EncodeToString(pk[:]) }

// GoString supports %#v formatting with the same hex rendering as String.
func (pk PublicKey) GoString() string { return "PublicKey(" + pk.String() + ")" }
