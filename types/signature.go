package types

import (
	"crypto/subtle"
	"encoding/hex"
)

// SignatureLen is the fixed width of an Ed25519 signature in bytes.
const SignatureLen = 64

// Signature is an Ed25519 signature over an envelope's signed prefix.
type Signature [SignatureLen]byte

// SignatureFromBytes copies b into a new Signature. b must be exactly
// SignatureLen bytes.
func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureLen {
		return sig, ErrInvalidLength
	}
	copy(sig[:], b)
	return sig, nil
}

// Slice returns sig as a []byte sharing the array's backing storage.
func (sig Signature) Slice() []byte { return sig[:] }

// Equal reports whether sig and other hold the same bytes, in constant time.
func (sig Signature) Equal(other Signature) bool {
	return subtle.ConstantTimeCompare(sig[:], other[:]) == 1
}

// String renders sig as lowercase hex.
func (sig Signature) String() string { return hex.EncodeToString(sig[:]) }
