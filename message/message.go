package message

import (
	"github.com/dist-svc/dsf-core/base"
	"github.com/dist-svc/dsf-core/crypto"
	"github.com/dist-svc/dsf-core/options"
	"github.com/dist-svc/dsf-core/types"
	"github.com/dist-svc/dsf-core/wire"
)

// Message is the decoded, validated view over any of the seven message
// kinds. Which fields are populated depends on Kind.
type Message struct {
	Kind           Kind
	Base           *base.Base
	RequestId      types.RequestId
	AddressRequest bool

	TargetID     *types.Id     // FindNodes, FindValues
	Pages        [][]byte      // Store, ValuesFound: each a complete encoded page, undecoded
	Peers        []PeerBlock   // NodesFound
	ObservedAddr *options.Addr // set on a response to an address-request
}

// PeerBlock is one peer entry within a NodesFound message: a PeerId
// followed by the options describing that peer, up to (but excluding)
// the next PeerId.
type PeerBlock struct {
	PeerId  types.Id
	PubKey  *types.PublicKey
	V4Addrs []options.Addr
	V6Addrs []options.Addr
}

func encodeOptions(opts []options.Option) ([]byte, error) {
	buf := make([]byte, options.VecEncodedLen(opts))
	w := wire.NewWriter(buf)
	if err := options.EncodeVec(w, opts); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// encode is the shared low-level builder every kind-specific Encode*
// function calls: it always adds exactly one RequestId option, and
// optionally an ObservedAddr option and the AddressRequest flag.
func encode(buf []byte, kind Kind, senderID types.Id, data []byte, requestID types.RequestId, addressRequest bool, observedAddr *options.Addr, signer types.PrivateKey, suite crypto.Suite, symKey *types.SecretKey) (int, error) {
	if addressRequest && !kind.IsRequest() {
		return 0, ErrAddressRequestOnResponse
	}
	opts := []options.Option{{Kind: options.RequestId, Data: requestID.Slice()}}
	if observedAddr != nil {
		var (
			o   options.Option
			err error
		)
		if v4 := observedAddr.IP.To4(); v4 != nil {
			o, err = options.EncodeV4Addr(observedAddr.IP, observedAddr.Port)
		} else {
			o, err = options.EncodeV6Addr(observedAddr.IP, observedAddr.Port)
		}
		if err != nil {
			return 0, err
		}
		opts = append(opts, o)
	}
	publicOptsRaw, err := encodeOptions(opts)
	if err != nil {
		return 0, err
	}

	var flags base.Flags
	if addressRequest {
		flags |= base.FlagAddressRequest
	}
	hdr := base.Header{Kind: uint16(kind), Flags: flags}
	return base.Encode(buf, hdr, senderID, data, nil, publicOptsRaw, suite, signer, symKey)
}

// EncodePing builds an empty Ping request.
func EncodePing(buf []byte, senderID types.Id, requestID types.RequestId, addressRequest bool, signer types.PrivateKey, suite crypto.Suite) (int, error) {
	return encode(buf, Ping, senderID, nil, requestID, addressRequest, nil, signer, suite, nil)
}

// EncodeNoResult builds an empty NoResult response.
func EncodeNoResult(buf []byte, senderID types.Id, requestID types.RequestId, observedAddr *options.Addr, signer types.PrivateKey, suite crypto.Suite) (int, error) {
	return encode(buf, NoResult, senderID, nil, requestID, false, observedAddr, signer, suite, nil)
}

// EncodeFindNodes builds a FindNodes request targeting target.
func EncodeFindNodes(buf []byte, senderID types.Id, target types.Id, requestID types.RequestId, addressRequest bool, signer types.PrivateKey, suite crypto.Suite) (int, error) {
	return encode(buf, FindNodes, senderID, target.Slice(), requestID, addressRequest, nil, signer, suite, nil)
}

// EncodeFindValues builds a FindValues request targeting target.
func EncodeFindValues(buf []byte, senderID types.Id, target types.Id, requestID types.RequestId, addressRequest bool, signer types.PrivateKey, suite crypto.Suite) (int, error) {
	return encode(buf, FindValues, senderID, target.Slice(), requestID, addressRequest, nil, signer, suite, nil)
}

// EncodeStore builds a Store message carrying pages, each already a
// complete base-encoded page (e.g. the output of page.EncodePrimary).
func EncodeStore(buf []byte, senderID types.Id, pages [][]byte, requestID types.RequestId, observedAddr *options.Addr, signer types.PrivateKey, suite crypto.Suite) (int, error) {
	data := concatPages(pages)
	return encode(buf, Store, senderID, data, requestID, false, observedAddr, signer, suite, nil)
}

// EncodeValuesFound builds a ValuesFound response carrying pages.
func EncodeValuesFound(buf []byte, senderID types.Id, pages [][]byte, requestID types.RequestId, observedAddr *options.Addr, signer types.PrivateKey, suite crypto.Suite) (int, error) {
	data := concatPages(pages)
	return encode(buf, ValuesFound, senderID, data, requestID, false, observedAddr, signer, suite, nil)
}

// EncodeNodesFound builds a NodesFound response carrying peers.
func EncodeNodesFound(buf []byte, senderID types.Id, peers []PeerBlock, requestID types.RequestId, observedAddr *options.Addr, signer types.PrivateKey, suite crypto.Suite) (int, error) {
	data, err := encodePeerBlocks(peers)
	if err != nil {
		return 0, err
	}
	return encode(buf, NodesFound, senderID, data, requestID, false, observedAddr, signer, suite, nil)
}

func concatPages(pages [][]byte) []byte {
	n := 0
	for _, p := range pages {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range pages {
		out = append(out, p...)
	}
	return out
}

func encodePeerBlocks(peers []PeerBlock) ([]byte, error) {
	var opts []options.Option
	for _, p := range peers {
		if len(p.V4Addrs) == 0 && len(p.V6Addrs) == 0 {
			return nil, ErrPeerBlockNoAddress
		}
		opts = append(opts, options.Option{Kind: options.PeerId, Data: p.PeerId.Slice()})
		for _, a := range p.V4Addrs {
			o, err := options.EncodeV4Addr(a.IP, a.Port)
			if err != nil {
				return nil, err
			}
			opts = append(opts, o)
		}
		for _, a := range p.V6Addrs {
			o, err := options.EncodeV6Addr(a.IP, a.Port)
			if err != nil {
				return nil, err
			}
			opts = append(opts, o)
		}
		if p.PubKey != nil {
			opts = append(opts, options.Option{Kind: options.PubKey, Data: p.PubKey.Slice()})
		}
	}
	return encodeOptions(opts)
}
