package options

import (
	"net"

	"github.com/dist-svc/dsf-core/wire"
)

// Addr is a decoded V4Addr or V6Addr payload: an IP address, a port,
// and two reserved bytes carried across the wire as zero.
type Addr struct {
	IP   net.IP
	Port uint16
}

// EncodeV4Addr builds the Option for a V4Addr entry. ip must be a valid
// 4-byte IPv4 address.
func EncodeV4Addr(ip net.IP, port uint16) (Option, error) {
	v4 := ip.To4()
	if v4 == nil {
		return Option{}, ErrBodyShapeMismatch
	}
	buf := make([]byte, V4AddrLen)
	copy(buf[0:4], v4)
	w := wire.NewWriter(buf[4:])
	if err := w.WriteU16BE(port); err != nil {
		return Option{}, err
	}
	return Option{Kind: V4Addr, Data: buf}, nil
}

// DecodeV4Addr parses a V4Addr option's payload.
func DecodeV4Addr(o Option) (Addr, error) {
	if o.Kind != V4Addr || len(o.Data) != V4AddrLen {
		return Addr{}, ErrBodyShapeMismatch
	}
	r := wire.NewReader(o.Data[4:6])
	port, err := r.ReadU16BE()
	if err != nil {
		return Addr{}, err
	}
	return Addr{IP: net.IP(append([]byte(nil), o.Data[0:4]...)), Port: port}, nil
}

// EncodeV6Addr builds the Option for a V6Addr entry. ip must be a valid
// 16-byte IPv6 address.
func EncodeV6Addr(ip net.IP, port uint16) (Option, error) {
	v6 := ip.To16()
	if v6 == nil {
		return Option{}, ErrBodyShapeMismatch
	}
	buf := make([]byte, V6AddrLen)
	copy(buf[0:16], v6)
	w := wire.NewWriter(buf[16:18])
	if err := w.WriteU16BE(port); err != nil {
		return Option{}, err
	}
	return Option{Kind: V6Addr, Data: buf}, nil
}

// DecodeV6Addr parses a V6Addr option's payload.
func DecodeV6Addr(o Option) (Addr, error) {
	if o.Kind != V6Addr || len(o.Data) != V6AddrLen {
		return Addr{}, ErrBodyShapeMismatch
	}
	r := wire.NewReader(o.Data[16:18])
	port, err := r.ReadU16BE()
	if err != nil {
		return Addr{}, err
	}
	return Addr{IP: net.IP(append([]byte(nil), o.Data[0:16]...)), Port: port}, nil
}
