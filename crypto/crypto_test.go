package crypto_test

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"testing"

	"github.com/dist-svc/dsf-core/crypto"
	"github.com/dist-svc/dsf-core/types"
)

func genKeypair(t *testing.T) (types.PrivateKey, types.PublicKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	sk, err := types.PrivateKeyFromBytes(priv)
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes: %v", err)
	}
	pk, err := types.PublicKeyFromBytes(pub)
	if err != nil {
		t.Fatalf("PublicKeyFromBytes: %v", err)
	}
	return sk, pk
}

func TestSignVerifyRoundTrip(t *testing.T) {
	suite := crypto.Default{}
	sk, pk := genKeypair(t)
	body := []byte("dsf envelope body")

	sig := suite.Sign(sk, body)
	if !suite.Verify(pk, body, sig) {
		t.Fatalf("expected signature to verify")
	}

	tampered := append([]byte(nil), body...)
	tampered[0] ^= 0xff
	if suite.Verify(pk, tampered, sig) {
		t.Fatalf("expected tampered body to fail verification")
	}
}

func TestDeriveIDMatchesSHA256(t *testing.T) {
	suite := crypto.Default{}
	_, pk := genKeypair(t)
	id := suite.DeriveID(pk)
	if id.IsZero() {
		t.Fatalf("derived id should not be zero for a real key")
	}
	want := sha256.Sum256(pk.Slice())
	if !bytes.Equal(id.Slice(), want[:]) {
		t.Fatalf("DeriveID = %x, want SHA-256 of public key %x", id.Slice(), want[:])
	}
	// DeriveID must be deterministic.
	if id2 := suite.DeriveID(pk); !id.Equal(id2) {
		t.Fatalf("DeriveID is not deterministic")
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	suite := crypto.Default{}
	var sk types.SecretKey
	copy(sk[:], []byte("0123456789abcdefghijklm"))

	nonce, err := suite.NewNonce()
	if err != nil {
		t.Fatalf("NewNonce: %v", err)
	}

	plaintext := []byte("hello, dsf")
	ciphertext, err := suite.Encrypt(sk, nonce, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if len(ciphertext) != len(plaintext)+16 {
		t.Fatalf("ciphertext length = %d, want %d", len(ciphertext), len(plaintext)+16)
	}

	decrypted, err := suite.Decrypt(sk, nonce, ciphertext)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("decrypted = %q, want %q", decrypted, plaintext)
	}
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	suite := crypto.Default{}
	var sk, wrong types.SecretKey
	copy(sk[:], []byte("0123456789abcdefghijklm"))
	copy(wrong[:], []byte("zyxwvutsrqponmlkjihgfed"))

	nonce, err := suite.NewNonce()
	if err != nil {
		t.Fatalf("NewNonce: %v", err)
	}
	ciphertext, err := suite.Encrypt(sk, nonce, []byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := suite.Decrypt(wrong, nonce, ciphertext); err != crypto.ErrDecryptFailed {
		t.Fatalf("got %v, want ErrDecryptFailed", err)
	}
}

func TestX25519ConversionRoundTripsWithDH(t *testing.T) {
	skA, pkA := genKeypair(t)
	skB, pkB := genKeypair(t)

	xPrivA := crypto.DeriveX25519PrivateKey(skA)
	xPubA, err := crypto.DeriveX25519PublicKey(pkA)
	if err != nil {
		t.Fatalf("DeriveX25519PublicKey(A): %v", err)
	}
	xPrivB := crypto.DeriveX25519PrivateKey(skB)
	xPubB, err := crypto.DeriveX25519PublicKey(pkB)
	if err != nil {
		t.Fatalf("DeriveX25519PublicKey(B): %v", err)
	}

	secretAB, err := crypto.X25519DH(xPrivA, xPubB)
	if err != nil {
		t.Fatalf("X25519DH(A,B): %v", err)
	}
	secretBA, err := crypto.X25519DH(xPrivB, xPubA)
	if err != nil {
		t.Fatalf("X25519DH(B,A): %v", err)
	}
	if secretAB != secretBA {
		t.Fatalf("derived shared secrets do not match")
	}
}
