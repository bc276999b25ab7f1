// Package message implements the seven request/response kinds carried
// between peers: Ping, FindNodes, FindValues, Store, NodesFound,
// ValuesFound, and NoResult. Every message is a base.Base whose id is
// the sender's node id and whose public options carry exactly one
// RequestId; kind-specific content lives in the data region, which for
// Store/ValuesFound is a concatenation of self-delimiting encoded pages
// and for NodesFound is a concatenation of PeerId-delimited option
// blocks.
package message
