package statemachine

// Decision is the outcome of a permission check. Handlers evaluate one
// Decision per action before touching the database, instead of branching on
// the caller's role inline.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow permits the action
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny rejects the action with a caller-facing reason
func Deny(reason string) Decision {
	return Decision{Reason: reason}
}
