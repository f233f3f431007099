package service

// Outcome is the result of a best-effort call. The error is kept for logging and tests
// but is never raised, so callers may discard an Outcome without losing control flow.
type Outcome struct {
	Err error
}

// OK reports whether the call succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}
