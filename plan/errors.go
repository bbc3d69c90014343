package plan

import "errors"

// ErrCanceled is returned when the context passed via WithContext is
// already done at a stage boundary.
var ErrCanceled = errors.New("plan: canceled")
