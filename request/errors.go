package request

import "errors"

// ErrParse indicates a request body could not be decoded as valid JSON, or
// carried a section id, test id or test grade that is not a decimal
// integer.
var ErrParse = errors.New("request: malformed request")

// ErrUnknownAction indicates the "action" field named something other than
// check, create, or recommend.
var ErrUnknownAction = errors.New("request: unknown action")

// ErrUnknownRecType indicates a recommend request's "recType" field named
// something other than active, next, or path.
var ErrUnknownRecType = errors.New("request: unknown recType")
