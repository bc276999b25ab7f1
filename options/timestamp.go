package options

import "github.com/dist-svc/dsf-core/wire"

// EncodeIssued builds an Issued option from millis, milliseconds since
// the Unix epoch. Issued/Expiry are little-endian on the wire even
// though the rest of the format is big-endian.
func EncodeIssued(millis uint64) (Option, error) {
	return encodeTimestamp(Issued, millis)
}

// EncodeExpiry builds an Expiry option from millis.
func EncodeExpiry(millis uint64) (Option, error) {
	return encodeTimestamp(Expiry, millis)
}

func encodeTimestamp(k Kind, millis uint64) (Option, error) {
	buf := make([]byte, IssuedLen)
	w := wire.NewWriter(buf)
	if err := w.WriteU64LE(millis); err != nil {
		return Option{}, err
	}
	return Option{Kind: k, Data: buf}, nil
}

// DecodeTimestamp parses an Issued or Expiry option's millisecond value.
func DecodeTimestamp(o Option) (uint64, error) {
	if (o.Kind != Issued && o.Kind != Expiry) || len(o.Data) != IssuedLen {
		return 0, ErrBodyShapeMismatch
	}
	r := wire.NewReader(o.Data)
	return r.ReadU64LE()
}
