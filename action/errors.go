package action

import "fmt"

// InvalidKindError indicates a lookup or dispatch on None or an
// out-of-range kind. This is a programming error on the caller's side.
type InvalidKindError struct {
	Kind Kind
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid action kind %d", int(e.Kind))
}

// UnknownTokenError indicates that a string is not a panel action drag
// token. Callers recover locally: the drag is simply not for us.
type UnknownTokenError struct {
	Token  string
	Reason string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("not an action token %q: %s", e.Token, e.Reason)
}

// IncompleteTableError indicates a descriptor table missing a required
// handler for a concrete kind. It can only come out of registry
// construction; a running registry never produces it.
type IncompleteTableError struct {
	Kind Kind
}

func (e *IncompleteTableError) Error() string {
	return fmt.Sprintf("action table has no invoke handler for %q", e.Kind)
}

// UnavailableError indicates that the collaborator an action needs was not
// configured or could not be reached at startup.
type UnavailableError struct {
	Collaborator string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s collaborator is not available", e.Collaborator)
}
