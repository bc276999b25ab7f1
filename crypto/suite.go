package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"io"

	"github.com/dist-svc/dsf-core/types"
)

// Suite is the capability set the base/page/message layers depend on.
// Callers inject an implementation; Default below is the reference one.
type Suite interface {
	// DeriveID computes the Id a primary page or peer publishing under
	// pk is expected to use.
	DeriveID(pk types.PublicKey) types.Id

	// Sign returns the Ed25519 signature of body under sk.
	Sign(sk types.PrivateKey, body []byte) types.Signature

	// Verify reports whether sig is a valid Ed25519 signature of body
	// under pk.
	Verify(pk types.PublicKey, body []byte, sig types.Signature) bool

	// NewNonce returns 24 fresh random bytes suitable as a secretbox
	// nonce.
	NewNonce() ([24]byte, error)

	// Encrypt seals plaintext under sk and nonce, returning ciphertext
	// with a trailing 16-byte Poly1305 tag appended.
	Encrypt(sk types.SecretKey, nonce [24]byte, plaintext []byte) ([]byte, error)

	// Decrypt opens ciphertext (which must include its trailing tag)
	// under sk and nonce, returning the authenticated plaintext.
	Decrypt(sk types.SecretKey, nonce [24]byte, ciphertext []byte) ([]byte, error)
}

// Default is the reference Suite: Ed25519 over crypto/ed25519, ID
// derivation by SHA-256, and XSalsa20-Poly1305 via
// golang.org/x/crypto/nacl/secretbox.
type Default struct{}

var _ Suite = Default{}

// DeriveID hashes pk with SHA-256, per spec.md §4.4's "whichever hash the
// protocol pins; implementations MUST be byte-identical" requirement.
func (Default) DeriveID(pk types.PublicKey) types.Id {
	sum := sha256.Sum256(pk.Slice())
	id, _ := types.IdFromBytes(sum[:])
	return id
}

// Sign returns the Ed25519 signature of body under sk.
func (Default) Sign(sk types.PrivateKey, body []byte) types.Signature {
	raw := ed25519.Sign(ed25519.PrivateKey(sk.Slice()), body)
	sig, _ := types.SignatureFromBytes(raw)
	return sig
}

// Verify reports whether sig authenticates body under pk.
func (Default) Verify(pk types.PublicKey, body []byte, sig types.Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pk.Slice()), body, sig.Slice())
}

// NewNonce returns 24 bytes read from crypto/rand.
func (Default) NewNonce() ([24]byte, error) {
	var n [24]byte
	_, err := io.ReadFull(rand.Reader, n[:])
	return n, err
}
