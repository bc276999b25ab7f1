package options

import (
	"strings"
)

// metadataSep separates the key and value halves of a Metadata option's
// UTF-8 payload.
const metadataSep = "|"

// EncodeMetadata builds a Metadata option from a key/value pair. Neither
// key nor value may itself contain the "|" separator.
func EncodeMetadata(key, value string) Option {
	return Option{Kind: Metadata, Data: []byte(key + metadataSep + value)}
}

// DecodeMetadata splits a Metadata option's payload back into its
// key/value pair.
func DecodeMetadata(o Option) (key, value string, err error) {
	if o.Kind != Metadata {
		return "", "", ErrBodyShapeMismatch
	}
	parts := strings.SplitN(string(o.Data), metadataSep, 2)
	if len(parts) != 2 {
		return "", "", ErrBodyShapeMismatch
	}
	return parts[0], parts[1], nil
}
