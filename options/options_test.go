package options_test

import (
	"testing"

	"github.com/dist-svc/dsf-core/options"
	"github.com/dist-svc/dsf-core/wire"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	reqID := make([]byte, options.RequestIdLen)
	for i := range reqID {
		reqID[i] = byte(i)
	}
	opts := []options.Option{
		{Kind: options.RequestId, Data: reqID},
		{Kind: options.ServKind, Data: []byte("svc")},
	}

	buf := make([]byte, options.VecEncodedLen(opts))
	w := wire.NewWriter(buf)
	if err := options.EncodeVec(w, opts); err != nil {
		t.Fatalf("EncodeVec: %v", err)
	}

	decoded, skipped, err := options.DecodeAll(w.Bytes())
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0", skipped)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d options, want 2", len(decoded))
	}
	if decoded[0].Kind != options.RequestId || string(decoded[0].Data) != string(reqID) {
		t.Fatalf("unexpected first option: %+v", decoded[0])
	}
	if decoded[1].Kind != options.ServKind || string(decoded[1].Data) != "svc" {
		t.Fatalf("unexpected second option: %+v", decoded[1])
	}
}

func TestDuplicateNonRepeatingKindRejected(t *testing.T) {
	opts := []options.Option{
		{Kind: options.Issued, Data: make([]byte, options.IssuedLen)},
		{Kind: options.Issued, Data: make([]byte, options.IssuedLen)},
	}
	buf := make([]byte, options.VecEncodedLen(opts))
	w := wire.NewWriter(buf)
	if err := options.EncodeVec(w, opts); err != nil {
		t.Fatalf("EncodeVec: %v", err)
	}
	if _, _, err := options.DecodeAll(w.Bytes()); err != options.ErrDuplicateOption {
		t.Fatalf("got %v, want ErrDuplicateOption", err)
	}
}

func TestRepeatingKindAllowsMultiple(t *testing.T) {
	opts := []options.Option{
		{Kind: options.V4Addr, Data: make([]byte, options.V4AddrLen)},
		{Kind: options.V4Addr, Data: make([]byte, options.V4AddrLen)},
	}
	buf := make([]byte, options.VecEncodedLen(opts))
	w := wire.NewWriter(buf)
	if err := options.EncodeVec(w, opts); err != nil {
		t.Fatalf("EncodeVec: %v", err)
	}
	decoded, _, err := options.DecodeAll(w.Bytes())
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(options.IterAll(decoded, options.V4Addr)) != 2 {
		t.Fatalf("expected 2 V4Addr options")
	}
}

func TestUnknownKindSkipped(t *testing.T) {
	buf := make([]byte, 64)
	w := wire.NewWriter(buf)
	unknown := options.Option{Kind: 0x00FE, Data: make([]byte, 6)}
	issued := options.Option{Kind: options.Issued, Data: make([]byte, options.IssuedLen)}
	if err := options.Encode(w, unknown); err != nil {
		t.Fatalf("Encode unknown: %v", err)
	}
	if err := options.Encode(w, issued); err != nil {
		t.Fatalf("Encode issued: %v", err)
	}

	decoded, skipped, err := options.DecodeAll(w.Bytes())
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if skipped != 1 {
		t.Fatalf("skipped = %d, want 1", skipped)
	}
	if len(decoded) != 1 || decoded[0].Kind != options.Issued {
		t.Fatalf("unexpected decoded set: %+v", decoded)
	}
}

func TestStrictIteratorRejectsUnknownKind(t *testing.T) {
	buf := make([]byte, 16)
	w := wire.NewWriter(buf)
	if err := options.Encode(w, options.Option{Kind: 0x00FE, Data: make([]byte, 2)}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	it := options.NewStrictIterator(w.Bytes())
	if _, _, err := it.Next(); err != options.ErrUnknownKind {
		t.Fatalf("got %v, want ErrUnknownKind", err)
	}
}

func TestFixedLenMismatchRejected(t *testing.T) {
	buf := make([]byte, 16)
	w := wire.NewWriter(buf)
	if err := options.Encode(w, options.Option{Kind: options.PeerId, Data: make([]byte, 5)}); err != options.ErrBodyShapeMismatch {
		t.Fatalf("got %v, want ErrBodyShapeMismatch", err)
	}
}
