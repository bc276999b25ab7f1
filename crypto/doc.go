// Package crypto is the façade the base/page/message layers call through
// for every cryptographic operation: ID derivation, Ed25519 signing and
// verification, and XSalsa20-Poly1305 authenticated encryption of the
// data and secure-options regions.
//
// Operations are exposed through the Suite interface so callers may
// substitute an alternative implementation (a hardware-backed signer, for
// instance); Default wraps the standard library and x/crypto and is
// sufficient for every test in this module.
package crypto
