// Package recommend computes a learner's active unit set from a net whose
// completed units are already marked, and picks a single next unit or an
// entire cost-minimizing path through the remaining active units.
//
// Every traversal in this package is branch-aware like the reach package,
// but resolves Condition and Test branches from a specific learner's
// recorded values instead of enumerating every possibility.
package recommend
