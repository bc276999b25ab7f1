package types

import (
	"crypto/subtle"
	"encoding/hex"
)

// PrivateKeyLen is the fixed width of an Ed25519 private key in bytes
// (32-byte seed followed by its 32-byte public key, the standard library's
// crypto/ed25519.PrivateKey layout).
const PrivateKeyLen = 64

// PrivateKey is an Ed25519 private signing key.
type PrivateKey [PrivateKeyLen]byte

// PrivateKeyFromBytes copies b into a new PrivateKey. b must be exactly
// PrivateKeyLen bytes.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	var sk PrivateKey
	if len(b) != PrivateKeyLen {
		return sk, ErrInvalidLength
	}
	copy(sk[:], b)
	return sk, nil
}

// Slice returns sk as a []byte sharing the array's backing storage.
func (sk PrivateKey) Slice() []byte { return sk[:] }

// Equal reports whether sk and other hold the same bytes, in constant time.
func (sk PrivateKey) Equal(other PrivateKey) bool {
	return subtle.ConstantTimeCompare(sk[:], other[:]) == 1
}

// Public returns the PublicKey embedded in the last 32 bytes of sk, per
// the crypto/ed25519 private-key layout.
func (sk PrivateKey) Public() PublicKey {
	var pk PublicKey
	copy(pk[:], sk[PrivateKeyLen-PublicKeyLen:])
	return pk
}

// String renders sk as lowercase hex. Callers handling real key material
// should prefer not to call this outside of tests or debug builds.
func (sk PrivateKey) String() string { return hex.EncodeToString(sk[:]) }
