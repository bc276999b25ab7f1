// Package page implements the three page shapes published at an id in
// the DHT — Primary, Secondary, and Peer — as a single tagged Page type
// over base.Base. Encode builds the typed option sets each shape
// requires and hands them to base.Encode; Decode runs base.Decode with
// the id↔key correspondence each shape needs and then validates the
// shape-specific required options.
package page
