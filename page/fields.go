package page

import "github.com/dist-svc/dsf-core/options"

// MetadataPair is a single Metadata option's key/value content.
type MetadataPair struct {
	Key, Value string
}

// Fields carries the caller-supplied content common to all three page
// shapes: the required Issued/Expiry timestamps plus whichever optional
// descriptive options the publisher wants to attach.
type Fields struct {
	Version     uint16
	Issued      uint64
	Expiry      uint64
	ServiceKind string
	Name        string
	V4Addrs     []options.Addr
	V6Addrs     []options.Addr
	Metadata    []MetadataPair
}

// buildCommonOptions returns the Issued/Expiry/ServiceKind/Name/Addrs/
// Metadata options every page shape may carry, in a fixed order.
func (f Fields) buildCommonOptions() ([]options.Option, error) {
	issued, err := options.EncodeIssued(f.Issued)
	if err != nil {
		return nil, err
	}
	expiry, err := options.EncodeExpiry(f.Expiry)
	if err != nil {
		return nil, err
	}
	opts := []options.Option{issued, expiry}

	if f.ServiceKind != "" {
		opts = append(opts, options.Option{Kind: options.ServKind, Data: []byte(f.ServiceKind)})
	}
	if f.Name != "" {
		opts = append(opts, options.Option{Kind: options.Name, Data: []byte(f.Name)})
	}
	for _, a := range f.V4Addrs {
		o, err := options.EncodeV4Addr(a.IP, a.Port)
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	for _, a := range f.V6Addrs {
		o, err := options.EncodeV6Addr(a.IP, a.Port)
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	for _, kv := range f.Metadata {
		opts = append(opts, options.EncodeMetadata(kv.Key, kv.Value))
	}
	return opts, nil
}
