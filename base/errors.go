package base

import "errors"

var (
	// ErrReservedBitsSet is returned on decode when the reserved header
	// byte or the reserved flag bits (3-7) are non-zero.
	ErrReservedBitsSet = errors.New("dsf-core: reserved header bits set")

	// ErrBadLength is returned on decode when a declared region length
	// is not 4-byte aligned, or when the header's computed signature
	// offset does not land exactly 64 bytes before the end of the slice.
	ErrBadLength = errors.New("dsf-core: region length not 4-byte aligned or inconsistent with slice length")

	// ErrNoPublicKey is returned on decode when no public key can be
	// resolved for the envelope: none was supplied, none is present as
	// a PubKey option, and the resolver callback (if any) found none.
	ErrNoPublicKey = errors.New("dsf-core: no public key available to verify envelope")

	// ErrIdKeyMismatch is returned when the envelope's id does not
	// equal the derived id of its resolved public key, for kinds where
	// that correspondence is required.
	ErrIdKeyMismatch = errors.New("dsf-core: id does not match derived id of public key")
)
