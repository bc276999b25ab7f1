package crypto

import "errors"

var (
	// ErrSignatureInvalid is returned when an envelope's signature does
	// not verify under the resolved public key. Suite.Verify itself
	// reports a bool; callers such as base.Decode turn false into this.
	ErrSignatureInvalid = errors.New("dsf-core: signature invalid")

	// ErrDecryptFailed is returned by Decrypt when the Poly1305 tag
	// does not authenticate under the supplied key.
	ErrDecryptFailed = errors.New("dsf-core: decrypt failed")

	// ErrCiphertextTooShort is returned by Decrypt when the input is
	// smaller than the Poly1305 tag it must contain.
	ErrCiphertextTooShort = errors.New("dsf-core: ciphertext shorter than authentication tag")

	errInvalidEdwardsPoint = errors.New("dsf-core: public key is not a valid edwards point")
)
