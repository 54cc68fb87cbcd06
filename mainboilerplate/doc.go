// Package mainboilerplate contains shared boilerplate for packetlens
// programs: configuration parsing, logging, and diagnostics. It provides a
// selection of narrowly scoped functions so callers do not have to buy-in
// to an all-or-nothing approach.
package mainboilerplate
