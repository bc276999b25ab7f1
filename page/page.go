package page

import (
	"github.com/dist-svc/dsf-core/base"
	"github.com/dist-svc/dsf-core/crypto"
	"github.com/dist-svc/dsf-core/options"
	"github.com/dist-svc/dsf-core/types"
	"github.com/dist-svc/dsf-core/wire"
)

// Page is the decoded, validated view over any of the three page
// shapes. Which optional fields are populated depends on Variant:
// PublicKey only for Primary/Peer, PeerId only for Secondary.
type Page struct {
	Variant Variant
	Base    *base.Base

	PublicKey *types.PublicKey
	PeerId    *types.Id

	Issued uint64
	Expiry uint64

	PublicOptions  []options.Option
	SecureOptions  []options.Option
	SkippedUnknown int
}

// encodeOptions serialises opts with options.EncodeVec into a
// freshly-sized buffer, for passing into base.Encode as a raw region.
func encodeOptions(opts []options.Option) ([]byte, error) {
	buf := make([]byte, options.VecEncodedLen(opts))
	w := wire.NewWriter(buf)
	if err := options.EncodeVec(w, opts); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// EncodePrimary builds a primary page: id = H(pub), public options =
// PubKey(pub) plus Fields' common options.
func EncodePrimary(buf []byte, f Fields, signer types.PrivateKey, pub types.PublicKey, suite crypto.Suite, symKey *types.SecretKey) (int, error) {
	return encode(buf, KindGeneric, 0, f, signer, pub, nil, suite, symKey)
}

// EncodeSecondary builds a secondary page: id = targetID, public
// options = PeerId(peerID) plus Fields' common options. The signer must
// be the private key corresponding to peerID.
func EncodeSecondary(buf []byte, f Fields, targetID types.Id, peerID types.Id, signer types.PrivateKey, suite crypto.Suite, symKey *types.SecretKey) (int, error) {
	opts, err := f.buildCommonOptions()
	if err != nil {
		return 0, err
	}
	opts = append([]options.Option{{Kind: options.PeerId, Data: peerID.Slice()}}, opts...)
	publicOptsRaw, err := encodeOptions(opts)
	if err != nil {
		return 0, err
	}
	hdr := base.Header{Kind: KindGeneric, Version: f.Version, Flags: base.FlagSecondary}
	return base.Encode(buf, hdr, targetID, nil, nil, publicOptsRaw, suite, signer, symKey)
}

// EncodePeer builds a peer page: a primary page (kind KindPeer)
// advertising pub's address. f must carry at least one V4Addr or
// V6Addr, or EncodePeer returns ErrPeerPageNoAddress.
func EncodePeer(buf []byte, f Fields, signer types.PrivateKey, pub types.PublicKey, suite crypto.Suite, symKey *types.SecretKey) (int, error) {
	if len(f.V4Addrs) == 0 && len(f.V6Addrs) == 0 {
		return 0, ErrPeerPageNoAddress
	}
	return encode(buf, KindPeer, 0, f, signer, pub, nil, suite, symKey)
}

func encode(buf []byte, kind uint16, flags base.Flags, f Fields, signer types.PrivateKey, pub types.PublicKey, data []byte, suite crypto.Suite, symKey *types.SecretKey) (int, error) {
	opts, err := f.buildCommonOptions()
	if err != nil {
		return 0, err
	}
	opts = append([]options.Option{{Kind: options.PubKey, Data: pub.Slice()}}, opts...)
	publicOptsRaw, err := encodeOptions(opts)
	if err != nil {
		return 0, err
	}
	hdr := base.Header{Kind: kind, Version: f.Version, Flags: flags}
	id := suite.DeriveID(pub)
	return base.Encode(buf, hdr, id, data, nil, publicOptsRaw, suite, signer, symKey)
}

// Decode parses and validates any of the three page shapes. resolvePeer
// looks up a secondary page's signer by the PeerId in its public
// options; resolveByID is the fallback base.KeyResolver used when no
// PubKey option and no explicit key are available for a primary/peer
// page. Either resolver may be nil if the caller never needs that path.
func Decode(slice []byte, suite crypto.Suite, resolvePeer func(types.Id) (types.PublicKey, bool), resolveByID base.KeyResolver, symKey *types.SecretKey) (*Page, error) {
	flags, err := base.PeekFlags(slice)
	if err != nil {
		return nil, err
	}
	isSecondary := flags&base.FlagSecondary != 0

	var explicitPK *types.PublicKey
	if isSecondary {
		rawPublic, err := base.PublicOptionsRegion(slice)
		if err != nil {
			return nil, err
		}
		peerID, ok := scanForKind(rawPublic, options.PeerId)
		if !ok {
			return nil, ErrSecondaryPeerIdMissing
		}
		id, err := types.IdFromBytes(peerID)
		if err != nil {
			return nil, err
		}
		if resolvePeer == nil {
			return nil, base.ErrNoPublicKey
		}
		pk, ok := resolvePeer(id)
		if !ok {
			return nil, base.ErrNoPublicKey
		}
		explicitPK = &pk
	}

	b, err := base.Decode(slice, suite, explicitPK, resolveByID, symKey, !isSecondary)
	if err != nil {
		return nil, err
	}

	publicOpts, skippedPublic, err := options.DecodeAll(b.PublicOptions)
	if err != nil {
		return nil, err
	}
	secureOpts, skippedSecure, err := options.DecodeAll(b.SecureOptions)
	if err != nil {
		return nil, err
	}

	p := &Page{
		Base:           b,
		PublicOptions:  publicOpts,
		SecureOptions:  secureOpts,
		SkippedUnknown: skippedPublic + skippedSecure,
	}

	issuedOpt, ok := options.FindOne(publicOpts, options.Issued)
	if !ok {
		return nil, ErrMissingRequiredOption
	}
	if p.Issued, err = options.DecodeTimestamp(issuedOpt); err != nil {
		return nil, err
	}
	expiryOpt, ok := options.FindOne(publicOpts, options.Expiry)
	if !ok {
		return nil, ErrMissingRequiredOption
	}
	if p.Expiry, err = options.DecodeTimestamp(expiryOpt); err != nil {
		return nil, err
	}

	if isSecondary {
		p.Variant = Secondary
		if peerOpt, ok := options.FindOne(publicOpts, options.PeerId); ok {
			if id, err := types.IdFromBytes(peerOpt.Data); err == nil {
				p.PeerId = &id
			}
		}
	} else {
		pkOpt, ok := options.FindOne(publicOpts, options.PubKey)
		if !ok {
			return nil, ErrMissingRequiredOption
		}
		pk, err := types.PublicKeyFromBytes(pkOpt.Data)
		if err != nil {
			return nil, err
		}
		if !suite.DeriveID(pk).Equal(b.Id) {
			return nil, ErrPrimarySignerMismatch
		}
		p.PublicKey = &pk

		if b.Header.Kind == KindPeer {
			p.Variant = Peer
			hasAddr := len(options.IterAll(publicOpts, options.V4Addr)) > 0 ||
				len(options.IterAll(publicOpts, options.V6Addr)) > 0 ||
				len(options.IterAll(secureOpts, options.V4Addr)) > 0 ||
				len(options.IterAll(secureOpts, options.V6Addr)) > 0
			if !hasAddr {
				return nil, ErrPeerPageNoAddress
			}
		} else {
			p.Variant = Primary
		}
	}

	return p, nil
}

// scanForKind does a lenient, read-only scan of an option region for
// the first occurrence of kind, returning its raw payload.
func scanForKind(region []byte, kind options.Kind) ([]byte, bool) {
	it := options.NewIterator(region)
	for {
		opt, ok, err := it.Next()
		if err != nil || !ok {
			return nil, false
		}
		if opt.Kind == kind {
			return opt.Data, true
		}
	}
}
