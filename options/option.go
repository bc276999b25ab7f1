package options

import "github.com/dist-svc/dsf-core/wire"

// Option is a single decoded (or to-be-encoded) tagged value. Data is a
// borrowed view into the source buffer when produced by DecodeAll/Iterator,
// and a caller-owned slice when constructed for Encode.
type Option struct {
	Kind Kind
	Data []byte
}

// headerLen is the size of an option's kind+length prefix on the wire.
const headerLen = 4

// EncodedLen returns the number of bytes o occupies on the wire,
// including its 4-byte kind+length header and padding to a 4-byte
// boundary.
func (o Option) EncodedLen() int {
	return wire.AlignUp4(headerLen + len(o.Data))
}

// Encode writes o to w: kind, length, payload, zero-pad to 4 bytes.
func Encode(w *wire.Writer, o Option) error {
	if len(o.Data) > 0xFFFF {
		return ErrFieldTooLong
	}
	if n, ok := fixedLen(o.Kind); ok && n != len(o.Data) {
		return ErrBodyShapeMismatch
	}
	if err := w.WriteU16BE(uint16(o.Kind)); err != nil {
		return err
	}
	if err := w.WriteU16BE(uint16(len(o.Data))); err != nil {
		return err
	}
	if err := w.WriteBytes(o.Data); err != nil {
		return err
	}
	return w.Pad()
}

// EncodeVec writes every option in opts to w, in order.
func EncodeVec(w *wire.Writer, opts []Option) error {
	for _, o := range opts {
		if err := Encode(w, o); err != nil {
			return err
		}
	}
	return nil
}

// VecEncodedLen returns the total wire length of opts.
func VecEncodedLen(opts []Option) int {
	n := 0
	for _, o := range opts {
		n += o.EncodedLen()
	}
	return n
}
