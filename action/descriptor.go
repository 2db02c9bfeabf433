package action

// Context carries whatever an invoked action needs from the triggering
// event. The registry passes it through untouched.
type Context struct {
	// Display is the active display/screen handle, e.g. the DISPLAY value
	// of the screen the button lives on.
	Display string
	// Timestamp is the toolkit timestamp of the triggering event.
	Timestamp uint32
}

// Descriptor bundles the immutable metadata and behavior of one action kind.
// The table is total over concrete kinds and never mutated after the
// registry is built.
type Descriptor struct {
	Name      string
	IconName  string
	Text      string
	Tooltip   string
	HelpTopic string

	Invoke     func(Context) error
	SetupMenu  func(MenuRegistrar)
	InvokeMenu func(Context, string) error
	// IsDisabled is the enablement predicate; nil means always enabled.
	IsDisabled func() bool
}

// LogoutMode selects the session manager's logout confirmation behavior.
// Values match the org.gnome.SessionManager Logout modes.
type LogoutMode uint32

const (
	LogoutNormal LogoutMode = iota
	LogoutNoConfirmation
	LogoutForce
)

// SessionManager is the session management service consulted by the Logout
// and Shutdown actions.
type SessionManager interface {
	RequestLogout(mode LogoutMode) error
	RequestShutdown() error
	ShutdownAvailable() bool
}

// ScreenLocker is the screensaver service behind the Lock action.
type ScreenLocker interface {
	Lock(ctx Context) error
	InvokeAction(ctx Context, name string) error
	ActionAvailable(name string) bool
}

// Lockdown exposes the session's lockdown policy flags. Predicates read
// these at call time; values are never cached by the registry.
type Lockdown interface {
	LockedDown() bool
	DisableLockScreen() bool
	DisableLogOut() bool
	DisableCommandLine() bool
	DisableForceQuit() bool
}

// Launcher spawns the external programs actions delegate to.
type Launcher interface {
	PresentRunDialog(ctx Context) error
	LaunchDesktopFile(ctx Context, desktopFile, fallback string) error
	ConnectServer(ctx Context) error
	ForceQuit(ctx Context) error
	ShowHelp(ctx Context, topic string) error
}

// MenuRegistrar receives the context menu items an action contributes.
type MenuRegistrar interface {
	AddCallback(id, iconName, label string, enabled func() bool)
}
