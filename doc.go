// Package dsfcore implements the wire-level object model and codec for
// a distributed service-discovery protocol: fixed-size ids derived from
// public keys, signed and optionally encrypted pages published to a
// Kademlia-like DHT, and signed request/response messages exchanged
// between peers.
//
// types holds the fixed-width key, id, and signature wrappers; wire the
// bounded big-endian/little-endian byte cursors every codec above it
// builds on; options the TLV option codec; crypto the signing and
// authenticated-encryption façade; base the signed container envelope
// shared by pages and messages; page and message the two payload kinds
// carried inside it.
package dsfcore
