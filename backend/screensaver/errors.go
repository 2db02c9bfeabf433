package screensaver

// NotAvailableError indicates a screensaver action that cannot currently
// work, e.g. the preferences tool is not installed.
type NotAvailableError struct {
	Action string
}

func (e *NotAvailableError) Error() string {
	return "screensaver action not available: " + e.Action
}
