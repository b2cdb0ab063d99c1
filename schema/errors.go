package schema

import "errors"

// Structural errors abort the call; they indicate caller misuse. Bad data
// coming from parsed documents (dates, revision text) is never surfaced as
// an error and is normalized to defaults by the accessors instead.
var (
	ErrMalformedName = errors.New("malformed prefixed name")
	ErrUnknownPrefix = errors.New("unknown namespace prefix")
	ErrValueTooLong  = errors.New("property value exceeds 255 characters")
	ErrTypeMismatch  = errors.New("wrong value type for property")
	ErrInvalidValue  = errors.New("invalid property value")
)
