package types

import (
	"crypto/subtle"
	"encoding/hex"
)

// SecretKeyLen is the fixed width of a SecretKey in bytes, as pinned by
// spec.md's data model. See SPEC_FULL.md §3 for how crypto expands this
// into the 32-byte key the underlying XSalsa20-Poly1305 construction
// requires without changing this wire width.
const SecretKeyLen = 24

// SecretKey is the symmetric key used to encrypt a Base envelope's data
// and secure-options regions.
type SecretKey [SecretKeyLen]byte

// SecretKeyFromBytes copies b into a new SecretKey. b must be exactly
// SecretKeyLen bytes.
func SecretKeyFromBytes(b []byte) (SecretKey, error) {
	var sk SecretKey
	if len(b) != SecretKeyLen {
		return sk, ErrInvalidLength
	}
	copy(sk[:], b)
	return sk, nil
}

// Slice returns sk as a []byte sharing the array's backing storage.
func (sk SecretKey) Slice() []byte { return sk[:] }

// Equal reports whether sk and other hold the same bytes, in constant time.
func (sk SecretKey) Equal(other SecretKey) bool {
	return subtle.ConstantTimeCompare(sk[:], other[:]) == 1
}

// String renders sk as lowercase hex. Callers handling real key material
// should prefer not to call this outside of tests or debug builds.
func (sk SecretKey) String() string { return hex.EncodeToString(sk[:]) }
