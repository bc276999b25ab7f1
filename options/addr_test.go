package options_test

import (
	"net"
	"testing"

	"github.com/dist-svc/dsf-core/options"
)

func TestV4AddrRoundTrip(t *testing.T) {
	opt, err := options.EncodeV4Addr(net.IPv4(10, 0, 0, 1), 4242)
	if err != nil {
		t.Fatalf("EncodeV4Addr: %v", err)
	}
	addr, err := options.DecodeV4Addr(opt)
	if err != nil {
		t.Fatalf("DecodeV4Addr: %v", err)
	}
	if !addr.IP.Equal(net.IPv4(10, 0, 0, 1)) || addr.Port != 4242 {
		t.Fatalf("unexpected addr: %+v", addr)
	}
}

func TestV6AddrRoundTrip(t *testing.T) {
	ip := net.ParseIP("2001:db8::1")
	opt, err := options.EncodeV6Addr(ip, 53)
	if err != nil {
		t.Fatalf("EncodeV6Addr: %v", err)
	}
	addr, err := options.DecodeV6Addr(opt)
	if err != nil {
		t.Fatalf("DecodeV6Addr: %v", err)
	}
	if !addr.IP.Equal(ip) || addr.Port != 53 {
		t.Fatalf("unexpected addr: %+v", addr)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	opt, err := options.EncodeIssued(1_700_000_000_000)
	if err != nil {
		t.Fatalf("EncodeIssued: %v", err)
	}
	got, err := options.DecodeTimestamp(opt)
	if err != nil {
		t.Fatalf("DecodeTimestamp: %v", err)
	}
	if got != 1_700_000_000_000 {
		t.Fatalf("got %d, want 1700000000000", got)
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	opt := options.EncodeMetadata("region", "us-west")
	key, value, err := options.DecodeMetadata(opt)
	if err != nil {
		t.Fatalf("DecodeMetadata: %v", err)
	}
	if key != "region" || value != "us-west" {
		t.Fatalf("got %q=%q", key, value)
	}
}
