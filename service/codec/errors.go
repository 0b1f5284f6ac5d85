package codec

import "errors"

// ErrNoRootElement is returned when parsed text carries no Flow root
// element.  It is surfaced verbatim so callers can detect the condition with
// errors.Is instead of string comparison.
var ErrNoRootElement = errors.New("codec: document has no Flow root element")
