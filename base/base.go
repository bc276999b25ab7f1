package base

import (
	"github.com/dist-svc/dsf-core/crypto"
	"github.com/dist-svc/dsf-core/options"
	"github.com/dist-svc/dsf-core/types"
	"github.com/dist-svc/dsf-core/wire"
)

// KeyResolver looks up the public key a Base's signer claims to be,
// given the envelope's id. It is the third-choice key source in Decode's
// resolution order (after an explicit key and a PubKey option).
type KeyResolver func(id types.Id) (types.PublicKey, bool)

// Base is the common container every page and message is built from.
// Data, SecureOptions and PublicOptions borrow from the slice passed to
// Decode (or, once decrypted, from a scratch buffer allocated for that
// purpose) and share its lifetime.
//
// Data holds the data region exactly as written, 4-byte pad included
// (and with the encryption nonce already stripped, if the envelope was
// decrypted; an encrypted envelope decoded without a key keeps the
// 24-byte nonce prefix at the front of Data); callers that need an exact unpadded length carry it by
// other means — a fixed per-kind size, or a length embedded in the
// payload itself.
type Base struct {
	Header        Header
	Id            types.Id
	Data          []byte
	SecureOptions []byte
	PublicOptions []byte
	Signature     types.Signature

	// SkippedUnknown counts unrecognised option kinds encountered while
	// resolving a PubKey option out of PublicOptions during Decode. It
	// is a lower bound: callers that later run options.DecodeAll over
	// PublicOptions/SecureOptions themselves get the full count.
	SkippedUnknown int
}

// EncodedLen returns the total wire length Encode will produce for the
// given region sizes, accounting for the 16-byte authentication tag
// added when encrypted is true.
func EncodedLen(dataLen, secureOptsLen, publicOptsLen int, encrypted bool) int {
	n := PrefixLen
	if encrypted {
		n += 24 // nonce prefix inside the data region
	}
	n += wire.AlignUp4(dataLen)
	n += wire.AlignUp4(secureOptsLen)
	if encrypted {
		n += 16 // trailing Poly1305 tag, inside secure_options_len
	}
	n += wire.AlignUp4(publicOptsLen)
	n += types.SignatureLen
	return n
}

// Encode writes a complete Base envelope into buf: header, id, data,
// secure options (serialised, e.g. by options.EncodeVec), optional
// encryption of data||secure_options, public options, and a trailing
// Ed25519 signature over everything preceding it.
//
// secureOptsRaw and publicOptsRaw are pre-serialised option regions
// (already individually padded per option, per options.Encode); Encode
// treats them as opaque bytes so a re-emitted, previously-decoded
// envelope's unknown options survive unchanged.
func Encode(buf []byte, hdr Header, id types.Id, data, secureOptsRaw, publicOptsRaw []byte, suite crypto.Suite, signer types.PrivateKey, symKey *types.SecretKey) (int, error) {
	encrypted := symKey != nil
	w := wire.NewWriter(buf)

	if err := w.Skip(headerLen); err != nil {
		return 0, err
	}
	if err := w.WriteBytes(id.Slice()); err != nil {
		return 0, err
	}

	dataStart := w.Offset()
	var nonce [24]byte
	if encrypted {
		n, err := suite.NewNonce()
		if err != nil {
			return 0, err
		}
		nonce = n
		if err := w.WriteBytes(nonce[:]); err != nil {
			return 0, err
		}
	}
	if err := w.WriteBytes(data); err != nil {
		return 0, err
	}
	if err := w.Pad(); err != nil {
		return 0, err
	}
	dataLen := w.Offset() - dataStart

	secureStart := w.Offset()
	if err := w.WriteBytes(secureOptsRaw); err != nil {
		return 0, err
	}
	if err := w.Pad(); err != nil {
		return 0, err
	}
	secureOptsLen := w.Offset() - secureStart

	if encrypted {
		plainStart := dataStart + 24
		plaintext := buf[plainStart:w.Offset()]
		ciphertext, err := suite.Encrypt(*symKey, nonce, plaintext)
		if err != nil {
			return 0, err
		}
		extra := len(ciphertext) - len(plaintext)
		if err := w.Skip(extra); err != nil {
			return 0, err
		}
		copy(buf[plainStart:plainStart+len(ciphertext)], ciphertext)
		secureOptsLen += extra
		hdr.Flags |= FlagEncrypted
	}

	publicStart := w.Offset()
	if err := w.WriteBytes(publicOptsRaw); err != nil {
		return 0, err
	}
	if err := w.Pad(); err != nil {
		return 0, err
	}
	publicOptsLen := w.Offset() - publicStart

	if err := writeHeader(buf, hdr, dataLen, secureOptsLen, publicOptsLen); err != nil {
		return 0, err
	}

	sigOffset := w.Offset()
	sig := suite.Sign(signer, buf[:sigOffset])
	if err := w.WriteBytes(sig.Slice()); err != nil {
		return 0, err
	}
	return w.Offset(), nil
}

// PublicOptionsRegion returns the raw public-options region of slice
// without verifying the signature or resolving any key. Public options
// are never encrypted, so this is safe to call ahead of a full Decode —
// page decoding uses it to find a secondary page's PeerId before it can
// know which key to verify the signature with.
func PublicOptionsRegion(slice []byte) ([]byte, error) {
	if len(slice) < PrefixLen+types.SignatureLen {
		return nil, wire.ErrTruncated
	}
	_, dataLen, secureOptsLen, publicOptsLen, err := readHeader(slice)
	if err != nil {
		return nil, err
	}
	if dataLen%4 != 0 || secureOptsLen%4 != 0 || publicOptsLen%4 != 0 {
		return nil, ErrBadLength
	}
	publicStart := PrefixLen + dataLen + secureOptsLen
	sigOffset := publicStart + publicOptsLen
	if sigOffset+types.SignatureLen != len(slice) {
		return nil, ErrBadLength
	}
	return slice[publicStart:sigOffset], nil
}

// PeekEncodedLen reads only the header region of slice and returns the
// total length of the single envelope beginning at slice[0], without
// validating alignment, signature, or bounds beyond the header itself.
// Message bodies that concatenate several self-delimiting envelopes
// (Store, ValuesFound) use this to find each envelope's boundary before
// decoding it.
func PeekEncodedLen(slice []byte) (int, error) {
	if len(slice) < headerLen {
		return 0, wire.ErrTruncated
	}
	_, dataLen, secureOptsLen, publicOptsLen, err := readHeader(slice)
	if err != nil {
		return 0, err
	}
	return PrefixLen + dataLen + secureOptsLen + publicOptsLen + types.SignatureLen, nil
}

// Decode parses slice into a Base, resolving the signer's public key in
// the order spec'd: explicitPK if non-nil, else a PubKey option in the
// public-options region, else resolve (if non-nil). requireIDFromKey
// additionally checks that Id equals suite.DeriveID(pk), as is required
// for primary pages, peer pages, and messages (but not secondary pages,
// whose Id names a target service rather than a signer).
//
// If symKey is non-nil and the envelope is encrypted, Decode decrypts
// the data and secure-options regions before returning. If symKey is
// nil, an encrypted envelope's regions are returned as ciphertext
// unchanged, so a relay can forward it without being able to read it.
func Decode(slice []byte, suite crypto.Suite, explicitPK *types.PublicKey, resolve KeyResolver, symKey *types.SecretKey, requireIDFromKey bool) (*Base, error) {
	if len(slice) < PrefixLen+types.SignatureLen {
		return nil, wire.ErrTruncated
	}
	hdr, dataLen, secureOptsLen, publicOptsLen, err := readHeader(slice)
	if err != nil {
		return nil, err
	}
	if dataLen%4 != 0 || secureOptsLen%4 != 0 || publicOptsLen%4 != 0 {
		return nil, ErrBadLength
	}
	if hdr.Flags&FlagEncrypted != 0 && dataLen < 24 {
		// The data region must hold at least the 24-byte nonce prefix
		// for an encrypted envelope; too short to even hold that is
		// truncated input, not a decrypt failure.
		return nil, wire.ErrTruncated
	}

	id, err := types.IdFromBytes(slice[headerLen:PrefixLen])
	if err != nil {
		return nil, err
	}

	dataStart := PrefixLen
	secureStart := dataStart + dataLen
	publicStart := secureStart + secureOptsLen
	sigOffset := publicStart + publicOptsLen
	if sigOffset+types.SignatureLen != len(slice) {
		return nil, ErrBadLength
	}

	publicOptionsRaw := slice[publicStart:sigOffset]

	pk, skippedUnknown, err := resolvePublicKey(explicitPK, publicOptionsRaw, id, resolve)
	if err != nil {
		return nil, err
	}

	if requireIDFromKey {
		if !suite.DeriveID(pk).Equal(id) {
			return nil, ErrIdKeyMismatch
		}
	}

	sig, err := types.SignatureFromBytes(slice[sigOffset:])
	if err != nil {
		return nil, err
	}
	if !suite.Verify(pk, slice[:sigOffset], sig) {
		return nil, crypto.ErrSignatureInvalid
	}

	data := slice[dataStart:secureStart]
	secureOptions := slice[secureStart:publicStart]

	if hdr.Flags&FlagEncrypted != 0 && symKey != nil {
		nonce := [24]byte{}
		copy(nonce[:], data[:24])
		ciphertext := append(append([]byte(nil), data[24:]...), secureOptions...)
		plaintext, err := suite.Decrypt(*symKey, nonce, ciphertext)
		if err != nil {
			return nil, err
		}
		payloadLen := len(data) - 24
		data = plaintext[:payloadLen]
		secureOptions = plaintext[payloadLen:]
	}
	// If encrypted and symKey is nil, data/secureOptions stay as the
	// ciphertext slices above, nonce included, so the envelope can be
	// forwarded unread.

	return &Base{
		Header:         hdr,
		Id:             id,
		Data:           data,
		SecureOptions:  secureOptions,
		PublicOptions:  publicOptionsRaw,
		Signature:      sig,
		SkippedUnknown: skippedUnknown,
	}, nil
}

func resolvePublicKey(explicitPK *types.PublicKey, publicOptionsRaw []byte, id types.Id, resolve KeyResolver) (types.PublicKey, int, error) {
	if explicitPK != nil {
		return *explicitPK, 0, nil
	}

	it := options.NewIterator(publicOptionsRaw)
	for {
		opt, ok, err := it.Next()
		if err != nil {
			return types.PublicKey{}, it.Skipped(), err
		}
		if !ok {
			break
		}
		if opt.Kind == options.PubKey {
			pk, err := types.PublicKeyFromBytes(opt.Data)
			if err != nil {
				return types.PublicKey{}, it.Skipped(), err
			}
			return pk, it.Skipped(), nil
		}
	}

	if resolve != nil {
		if pk, ok := resolve(id); ok {
			return pk, it.Skipped(), nil
		}
	}
	return types.PublicKey{}, it.Skipped(), ErrNoPublicKey
}
