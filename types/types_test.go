package types_test

import (
	"testing"

	"github.com/dist-svc/dsf-core/types"
)

func TestIdFromBytesRejectsWrongLength(t *testing.T) {
	if _, err := types.IdFromBytes(make([]byte, 31)); err != types.ErrInvalidLength {
		t.Fatalf("got %v, want ErrInvalidLength", err)
	}
	if _, err := types.IdFromBytes(make([]byte, 32)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIdEqualAndString(t *testing.T) {
	a, err := types.IdFromBytes(bytesOf(32, 0xAA))
	if err != nil {
		t.Fatalf("IdFromBytes: %v", err)
	}
	b, err := types.IdFromBytes(bytesOf(32, 0xAA))
	if err != nil {
		t.Fatalf("IdFromBytes: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("expected equal ids")
	}
	if a.String() != "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Fatalf("unexpected hex rendering: %s", a.String())
	}
}

func TestPrivateKeyPublicExtraction(t *testing.T) {
	raw := make([]byte, types.PrivateKeyLen)
	for i := range raw {
		raw[i] = byte(i)
	}
	sk, err := types.PrivateKeyFromBytes(raw)
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes: %v", err)
	}
	pub := sk.Public()
	if pub.Slice()[0] != raw[32] {
		t.Fatalf("Public() did not extract the trailing 32 bytes correctly")
	}
}

func TestX25519PublicKeyFromBytesAndEqual(t *testing.T) {
	if _, err := types.X25519PublicKeyFromBytes(make([]byte, 31)); err != types.ErrInvalidLength {
		t.Fatalf("got %v, want ErrInvalidLength", err)
	}
	a, err := types.X25519PublicKeyFromBytes(bytesOf(32, 0x11))
	if err != nil {
		t.Fatalf("X25519PublicKeyFromBytes: %v", err)
	}
	b, err := types.X25519PublicKeyFromBytes(bytesOf(32, 0x11))
	if err != nil {
		t.Fatalf("X25519PublicKeyFromBytes: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("expected equal X25519 public keys")
	}
	c, err := types.X25519PublicKeyFromBytes(bytesOf(32, 0x22))
	if err != nil {
		t.Fatalf("X25519PublicKeyFromBytes: %v", err)
	}
	if a.Equal(c) {
		t.Fatalf("expected unequal X25519 public keys")
	}
}

func bytesOf(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}
