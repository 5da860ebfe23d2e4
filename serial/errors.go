package serial

import "errors"

// ErrParse indicates the input stream could not be decoded as a valid
// serialized net: a malformed section header, a node/arc row with too few
// columns, or a non-integer value where one was required.
var ErrParse = errors.New("serial: malformed serialized net")
