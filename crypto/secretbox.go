package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/dist-svc/dsf-core/internal/util/memzero"
	"github.com/dist-svc/dsf-core/types"
)

// secretboxHKDFInfo labels the HKDF expansion that stretches a 24-byte
// wire SecretKey into the 32-byte key secretbox's XSalsa20-Poly1305
// construction requires. See SPEC_FULL.md §3.
const secretboxHKDFInfo = "dsf-core/secretbox/v1"

func expandSecretboxKey(sk types.SecretKey) (*[32]byte, error) {
	reader := hkdf.New(sha256.New, sk.Slice(), nil, []byte(secretboxHKDFInfo))
	var key [32]byte
	if _, err := io.ReadFull(reader, key[:]); err != nil {
		return nil, err
	}
	return &key, nil
}

// Encrypt seals plaintext under sk and nonce using XSalsa20-Poly1305. The
// returned slice is len(plaintext)+16 bytes: ciphertext followed by the
// Poly1305 tag, matching secretbox.Seal's own layout.
func (Default) Encrypt(sk types.SecretKey, nonce [24]byte, plaintext []byte) ([]byte, error) {
	key, err := expandSecretboxKey(sk)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key[:])
	return secretbox.Seal(nil, plaintext, &nonce, key), nil
}

// Decrypt opens ciphertext (plaintext followed by its 16-byte tag) under
// sk and nonce, returning ErrDecryptFailed on authentication failure.
func (Default) Decrypt(sk types.SecretKey, nonce [24]byte, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < secretbox.Overhead {
		return nil, ErrCiphertextTooShort
	}
	key, err := expandSecretboxKey(sk)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key[:])
	plaintext, ok := secretbox.Open(nil, ciphertext, &nonce, key)
	if !ok {
		return nil, ErrDecryptFailed
	}
	return plaintext, nil
}
