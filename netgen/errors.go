package netgen

import "errors"

// ErrInvalidConfig indicates a Config resolved from the supplied Options
// fell outside the ranges Generate can work with (non-positive size,
// branchiness outside [0,1], fewer than 2 max branches).
var ErrInvalidConfig = errors.New("netgen: invalid configuration")
