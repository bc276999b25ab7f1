package message

import (
	"github.com/dist-svc/dsf-core/base"
	"github.com/dist-svc/dsf-core/crypto"
	"github.com/dist-svc/dsf-core/options"
	"github.com/dist-svc/dsf-core/types"
)

// Decode parses and validates any of the seven message kinds.
func Decode(slice []byte, suite crypto.Suite, explicitPK *types.PublicKey, resolve base.KeyResolver, symKey *types.SecretKey) (*Message, error) {
	b, err := base.Decode(slice, suite, explicitPK, resolve, symKey, true)
	if err != nil {
		return nil, err
	}
	if !b.Header.IsMessage() {
		return nil, ErrUnknownMessageKind
	}
	kind := Kind(b.Header.Kind)
	if !validKind(kind) {
		return nil, ErrUnknownMessageKind
	}

	publicOpts, _, err := options.DecodeAll(b.PublicOptions)
	if err != nil {
		return nil, err
	}
	reqOpt, ok := options.FindOne(publicOpts, options.RequestId)
	if !ok {
		return nil, ErrMessageMissingRequestId
	}
	var reqID types.RequestId
	copy(reqID[:], reqOpt.Data)

	m := &Message{
		Kind:           kind,
		Base:           b,
		RequestId:      reqID,
		AddressRequest: b.Header.Flags&base.FlagAddressRequest != 0,
	}
	if m.AddressRequest && !kind.IsRequest() {
		return nil, ErrAddressRequestOnResponse
	}
	if addrOpt, ok := options.FindOne(publicOpts, options.V4Addr); ok {
		a, err := options.DecodeV4Addr(addrOpt)
		if err != nil {
			return nil, err
		}
		m.ObservedAddr = &a
	} else if addrOpt, ok := options.FindOne(publicOpts, options.V6Addr); ok {
		a, err := options.DecodeV6Addr(addrOpt)
		if err != nil {
			return nil, err
		}
		m.ObservedAddr = &a
	}

	switch kind {
	case Ping, NoResult:
		if len(b.Data) != 0 {
			return nil, ErrBodyShapeMismatch
		}
	case FindNodes, FindValues:
		if len(b.Data) != types.IDLen {
			return nil, ErrBodyShapeMismatch
		}
		id, err := types.IdFromBytes(b.Data)
		if err != nil {
			return nil, err
		}
		m.TargetID = &id
	case Store, ValuesFound:
		pages, err := splitPages(b.Data)
		if err != nil {
			return nil, err
		}
		m.Pages = pages
	case NodesFound:
		peers, err := decodePeerBlocks(b.Data)
		if err != nil {
			return nil, err
		}
		m.Peers = peers
	}

	return m, nil
}

// splitPages walks data, a concatenation of self-delimiting encoded
// pages, and returns each page's byte range.
func splitPages(data []byte) ([][]byte, error) {
	var pages [][]byte
	for len(data) > 0 {
		n, err := base.PeekEncodedLen(data)
		if err != nil {
			return nil, err
		}
		if n <= 0 || n > len(data) {
			return nil, ErrBodyShapeMismatch
		}
		pages = append(pages, data[:n])
		data = data[n:]
	}
	return pages, nil
}

// decodePeerBlocks walks data as a sequence of options, starting a new
// PeerBlock at each PeerId option and attributing subsequent options to
// it until the next PeerId or the end of the region. Unlike
// options.DecodeAll, it does not enforce the non-repeating-kind policy,
// since PeerId and PubKey legitimately repeat once per peer here.
func decodePeerBlocks(data []byte) ([]PeerBlock, error) {
	it := options.NewIterator(data)
	var blocks []PeerBlock
	currentIdx := -1

	for {
		opt, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch opt.Kind {
		case options.PeerId:
			id, err := types.IdFromBytes(opt.Data)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, PeerBlock{PeerId: id})
			currentIdx = len(blocks) - 1
		case options.PubKey:
			if currentIdx < 0 {
				return nil, ErrBodyShapeMismatch
			}
			pk, err := types.PublicKeyFromBytes(opt.Data)
			if err != nil {
				return nil, err
			}
			blocks[currentIdx].PubKey = &pk
		case options.V4Addr:
			if currentIdx < 0 {
				return nil, ErrBodyShapeMismatch
			}
			a, err := options.DecodeV4Addr(opt)
			if err != nil {
				return nil, err
			}
			blocks[currentIdx].V4Addrs = append(blocks[currentIdx].V4Addrs, a)
		case options.V6Addr:
			if currentIdx < 0 {
				return nil, ErrBodyShapeMismatch
			}
			a, err := options.DecodeV6Addr(opt)
			if err != nil {
				return nil, err
			}
			blocks[currentIdx].V6Addrs = append(blocks[currentIdx].V6Addrs, a)
		}
	}

	for i := range blocks {
		if len(blocks[i].V4Addrs) == 0 && len(blocks[i].V6Addrs) == 0 {
			return nil, ErrPeerBlockNoAddress
		}
	}
	return blocks, nil
}
