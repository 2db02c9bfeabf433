package session

// CapabilityError indicates a power operation the current session is not
// allowed or able to perform.
type CapabilityError struct {
	Required string
}

func (e *CapabilityError) Error() string {
	return "operation not allowed (requires " + e.Required + ")"
}
