package wire

import "encoding/binary"

// Reader is a bounds-checked cursor over a caller-owned immutable byte
// slice. Byte-range reads return borrowed views into the source slice,
// never copies, so decoding never allocates for the data it extracts.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader over buf starting at offset 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the cursor's current position.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int { return len(r.buf) }

func (r *Reader) take(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, ErrTruncated
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16BE reads a big-endian uint16.
func (r *Reader) ReadU16BE() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadU32BE reads a big-endian uint32.
func (r *Reader) ReadU32BE() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadU64LE reads a little-endian uint64. Mirrors Writer.WriteU64LE's use
// for the Issued/Expiry option timestamps.
func (r *Reader) ReadU64LE() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadBytes returns a borrowed view of the next n bytes. The returned
// slice aliases the Reader's backing buffer and must not be retained
// past the lifetime of that buffer if the caller intends to mutate it.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	return r.take(n)
}

// Skip advances the cursor by n bytes without inspecting them.
func (r *Reader) Skip(n int) error {
	_, err := r.take(n)
	return err
}

// SkipPad advances the cursor to the next 4-byte boundary (relative to
// the start of the buffer), verifying every skipped byte is zero. It
// returns ErrBadAlignment if any padding byte is non-zero.
func (r *Reader) SkipPad() error {
	n := PadLen(r.off)
	if n == 0 {
		return nil
	}
	b, err := r.take(n)
	if err != nil {
		return err
	}
	for _, v := range b {
		if v != 0 {
			return ErrBadAlignment
		}
	}
	return nil
}
