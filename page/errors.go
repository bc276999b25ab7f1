package page

import "errors"

var (
	// ErrPrimarySignerMismatch is returned when a primary page's PubKey
	// option does not match the key that actually signed it.
	ErrPrimarySignerMismatch = errors.New("dsf-core: primary page signer does not match its PubKey option")

	// ErrSecondaryPeerIdMissing is returned when a secondary page's
	// public options lack a PeerId.
	ErrSecondaryPeerIdMissing = errors.New("dsf-core: secondary page missing PeerId option")

	// ErrPeerPageNoAddress is returned when a peer page carries neither
	// a V4Addr nor a V6Addr option.
	ErrPeerPageNoAddress = errors.New("dsf-core: peer page has no V4Addr or V6Addr option")

	// ErrMissingRequiredOption is returned when a required, kind-
	// specific option (Issued, Expiry, or a primary/peer page's PubKey)
	// is absent. A secondary page without PeerId gets
	// ErrSecondaryPeerIdMissing instead.
	ErrMissingRequiredOption = errors.New("dsf-core: missing required option")
)
