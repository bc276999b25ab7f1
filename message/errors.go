package message

import "errors"

var (
	// ErrMessageMissingRequestId is returned when a message's public
	// options carry no RequestId. A second RequestId is rejected earlier,
	// by options.DecodeAll, as options.ErrDuplicateOption.
	ErrMessageMissingRequestId = errors.New("dsf-core: message missing RequestId option")

	// ErrAddressRequestOnResponse is returned when a caller attempts to
	// set the address-request flag while encoding a response message
	// (it is only meaningful on requests).
	ErrAddressRequestOnResponse = errors.New("dsf-core: address-request flag set on a response message")

	// ErrBodyShapeMismatch is returned when a kind's data region does
	// not have the shape that kind requires (e.g. FindNodes' target id
	// is not exactly 32 bytes).
	ErrBodyShapeMismatch = errors.New("dsf-core: message body has the wrong shape for its kind")

	// ErrPeerBlockNoAddress is returned when a NodesFound peer block
	// carries neither a V4Addr nor a V6Addr.
	ErrPeerBlockNoAddress = errors.New("dsf-core: peer block has no V4Addr or V6Addr option")

	// ErrUnknownMessageKind is returned when a message's kind bits do
	// not match any of the seven defined kinds.
	ErrUnknownMessageKind = errors.New("dsf-core: unknown message kind")
)
