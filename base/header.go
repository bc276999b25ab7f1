package base

import (
	"github.com/dist-svc/dsf-core/types"
	"github.com/dist-svc/dsf-core/wire"
)

// headerLen is the fixed kind/flags/reserved/version/lengths prefix,
// before the 32-byte id.
const headerLen = 12

// PrefixLen is headerLen plus the id, the offset at which the data
// region begins.
const PrefixLen = headerLen + types.IDLen

// Flags is the single reserved-checked bitfield carried by every Base
// envelope.
type Flags uint8

const (
	// FlagSecondary marks a page as a secondary page. Meaningful only
	// when Header.Kind's MSB is 0 (a page, not a message).
	FlagSecondary Flags = 1 << 0
	// FlagEncrypted marks the data and secure-options regions as
	// ciphertext.
	FlagEncrypted Flags = 1 << 1
	// FlagAddressRequest, on a request message, asks the responder to
	// report the request's observed source address in its response.
	FlagAddressRequest Flags = 1 << 2

	flagsReservedMask Flags = 0xF8
)

// messageBit is the kind bit distinguishing a Message (1) from a Page (0).
const messageBit = 0x8000

// Header carries the fixed fields preceding an envelope's id.
type Header struct {
	Kind    uint16
	Flags   Flags
	Version uint16
}

// IsMessage reports whether h's kind marks a Message rather than a Page.
func (h Header) IsMessage() bool { return h.Kind&messageBit != 0 }

// writeHeader encodes h and the three region lengths into buf[0:headerLen].
func writeHeader(buf []byte, h Header, dataLen, secureOptsLen, publicOptsLen int) error {
	w := wire.NewWriter(buf)
	if err := w.WriteU16BE(h.Kind); err != nil {
		return err
	}
	if err := w.WriteU8(uint8(h.Flags)); err != nil {
		return err
	}
	if err := w.WriteU8(0); err != nil { // reserved
		return err
	}
	if err := w.WriteU16BE(h.Version); err != nil {
		return err
	}
	if err := w.WriteU16BE(uint16(dataLen)); err != nil {
		return err
	}
	if err := w.WriteU16BE(uint16(secureOptsLen)); err != nil {
		return err
	}
	return w.WriteU16BE(uint16(publicOptsLen))
}

// PeekFlags reads just the flags byte from slice without validating
// anything else, so a caller can decide which decode policy (such as
// which id↔key correspondence to require) applies before running the
// full Decode.
func PeekFlags(slice []byte) (Flags, error) {
	if len(slice) < headerLen {
		return 0, wire.ErrTruncated
	}
	return Flags(slice[2]), nil
}

// readHeader decodes buf[0:headerLen] into a Header and the three region
// lengths, rejecting non-zero reserved bits.
func readHeader(buf []byte) (h Header, dataLen, secureOptsLen, publicOptsLen int, err error) {
	r := wire.NewReader(buf)
	kind, err := r.ReadU16BE()
	if err != nil {
		return h, 0, 0, 0, err
	}
	flagsRaw, err := r.ReadU8()
	if err != nil {
		return h, 0, 0, 0, err
	}
	reserved, err := r.ReadU8()
	if err != nil {
		return h, 0, 0, 0, err
	}
	if reserved != 0 || Flags(flagsRaw)&flagsReservedMask != 0 {
		return h, 0, 0, 0, ErrReservedBitsSet
	}
	version, err := r.ReadU16BE()
	if err != nil {
		return h, 0, 0, 0, err
	}
	dl, err := r.ReadU16BE()
	if err != nil {
		return h, 0, 0, 0, err
	}
	sl, err := r.ReadU16BE()
	if err != nil {
		return h, 0, 0, 0, err
	}
	pl, err := r.ReadU16BE()
	if err != nil {
		return h, 0, 0, 0, err
	}
	h = Header{Kind: kind, Flags: Flags(flagsRaw), Version: version}
	return h, int(dl), int(sl), int(pl), nil
}
