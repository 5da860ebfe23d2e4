// Package serial reads and writes the line-oriented textual net format
// described in the package's wire dialect: an @nodes block, an @arcs
// block, and an @attributes block. It is a bespoke reader/writer, not a
// generic graph-file library, because the dialect (SONST as the ELSE
// sentinel, the type-integer encoding, the write-only recommended
// attribute) has no off-the-shelf counterpart in the Go ecosystem.
package serial
