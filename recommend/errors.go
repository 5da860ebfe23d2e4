package recommend

import "errors"

// ErrInputInconsistency marks a non-fatal diagnostic: the traversal hit a
// node already marked UnitActive before the call, or a node of unknown
// kind. The active set returned alongside this error is still usable —
// Activate never corrupts its output on account of one bad node.
var ErrInputInconsistency = errors.New("recommend: input inconsistency encountered during traversal")
