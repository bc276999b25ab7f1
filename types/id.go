package types

import (
	"crypto/subtle"
	"encoding/hex"
)

// IDLen is the fixed width of an Id in bytes.
const IDLen = 32

// Id identifies a service or peer. For a primary page or a message it is
// the hash of the owning public key (see crypto.Suite.DeriveID); for a
// secondary page it names the service the page is attached to.
type Id [IDLen]byte

// IdFromBytes copies b into a new Id. b must be exactly IDLen bytes.
func IdFromBytes(b []byte) (Id, error) {
	var id Id
	if len(b) != IDLen {
		return id, ErrInvalidLength
	}
	copy(id[:], b)
	return id, nil
}

// Slice returns id as a []byte sharing the array's backing storage.
func (id Id) Slice() []byte { return id[:] }

// Equal reports whether id and other hold the same bytes, in constant time.
func (id Id) Equal(other Id) bool {
	return subtle.ConstantTimeCompare(id[:], other[:]) == 1
}

// String renders id as lowercase hex, per spec.md's debug-formatting rule.
func (id Id) String() string { return hex.EncodeToString(id[:]) }

// GoString supports %#v formatting with the same hex rendering as String.
func (id Id) GoString() string { return "Id(" + id.String() + ")" }

// IsZero reports whether id is the all-zero value.
func (id Id) IsZero() bool { return id.Equal(Id{}) }
