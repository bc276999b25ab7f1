package options

// Kind identifies the type of an option's payload.
type Kind uint16

const (
	PubKey    Kind = 0x00
	PeerId    Kind = 0x01
	RequestId Kind = 0x02
	ServKind  Kind = 0x03
	Name      Kind = 0x04
	V4Addr    Kind = 0x05
	V6Addr    Kind = 0x06
	Issued    Kind = 0x07
	Expiry    Kind = 0x08
	Metadata  Kind = 0x09
)

// Fixed payload sizes for the kinds whose wire size is pinned exactly.
// Var-length kinds (ServKind, Name, Metadata) are absent from this table.
const (
	PubKeyLen    = 32
	PeerIdLen    = 32
	RequestIdLen = 16
	// V4AddrLen is the V4Addr payload: 4-byte IPv4 address, 2-byte port,
	// 2 reserved bytes.
	V4AddrLen = 8
	// V6AddrLen is the V6Addr payload: 16-byte IPv6 address, 2-byte
	// port, 2 reserved bytes. See SPEC_FULL.md §3 for why this is 20,
	// not the option table's "18".
	V6AddrLen = 20
	IssuedLen = 8
	ExpiryLen = 8
)

// repeating reports whether multiple options of kind k are permitted in
// a single region. Kinds absent from this map default to non-repeating.
var repeating = map[Kind]bool{
	V4Addr:   true,
	V6Addr:   true,
	Metadata: true,
}

// IsRepeating reports whether k may legally appear more than once within
// a single option region.
func IsRepeating(k Kind) bool {
	return repeating[k]
}

// fixedLen reports the required payload length for kinds with a pinned
// wire size, and whether k has one at all.
func fixedLen(k Kind) (int, bool) {
	switch k {
	case PubKey:
		return PubKeyLen, true
	case PeerId:
		return PeerIdLen, true
	case RequestId:
		return RequestIdLen, true
	case V4Addr:
		return V4AddrLen, true
	case V6Addr:
		return V6AddrLen, true
	case Issued:
		return IssuedLen, true
	case Expiry:
		return ExpiryLen, true
	default:
		return 0, false
	}
}
