package crypto

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/curve25519"

	"github.com/dist-svc/dsf-core/types"
)

// GenerateX25519 returns a fresh, RFC 7748-clamped Curve25519 key pair,
// independent of any Ed25519 identity.
func GenerateX25519() (priv types.X25519PrivateKey, pub types.X25519PublicKey, err error) {
	if _, err = io.ReadFull(rand.Reader, priv[:]); err != nil {
		return priv, pub, err
	}
	clampX25519(&priv)
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return priv, pub, err
	}
	copy(pub[:], pb)
	return priv, pub, nil
}

// X25519DH computes the Curve25519 Diffie-Hellman shared secret between
// priv and pub.
func X25519DH(priv types.X25519PrivateKey, pub types.X25519PublicKey) ([32]byte, error) {
	var out [32]byte
	secret, err := curve25519.X25519(priv.Slice(), pub.Slice())
	if err != nil {
		return out, err
	}
	copy(out[:], secret)
	return out, nil
}

func clampX25519(k *types.X25519PrivateKey) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}
