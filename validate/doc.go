// Package validate checks a net.Net for the structural invariants a
// learning net must hold before it can be compressed or traversed: per-kind
// degree bounds, unique unit section ids, every Condition has an ELSE
// out-arc, and the whole net is acyclic.
//
// Validate never attempts to repair a net; it only reports what is wrong,
// accumulating every violation it finds into a single error rather than
// stopping at the first one, except for acyclicity — a cyclic net cannot be
// usefully checked further and is reported on its own.
package validate
