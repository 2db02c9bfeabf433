package launcher

// NotFoundError indicates a program that could not be found in PATH.
type NotFoundError struct {
	Program string
}

func (e *NotFoundError) Error() string {
	return "program not found: " + e.Program
}

// DisplayServerError indicates an action unsupported on the current
// display server.
type DisplayServerError struct {
	Reason string
}

func (e *DisplayServerError) Error() string {
	return e.Reason
}
