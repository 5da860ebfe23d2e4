// Package compress implements the single-pass, linear-time contraction of
// a net.Net that either proves the target is reachable from every source
// (Reachable), proves it is not (Unreachable, with diagnostics naming the
// offending branches), or leaves the net in a smaller but still-branching
// state for the reach package to finish checking (Inconclusive).
//
// Compression never increases the node or arc count; every successful
// contraction removes at least one node. It mutates the net in place —
// callers must not retain node or arc handles across a call to Compress.
package compress
