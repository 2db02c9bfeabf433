package action

import (
	"github.com/b0bbywan/go-panel-actions/icons"
	"github.com/b0bbywan/go-panel-actions/logger"
)

// Collaborators are the external services the descriptor table closes over.
// Any of them may be nil when the matching backend is disabled; actions
// depending on a missing collaborator fail with UnavailableError and their
// predicates report the action disabled.
type Collaborators struct {
	Session  SessionManager
	Screen   ScreenLocker
	Lockdown Lockdown
	Launcher Launcher

	// Wayland marks a Wayland display server; the shutdown enablement rule
	// differs there because logind stands in for the session manager.
	Wayland bool

	// LogoutPrompt reports whether logout should ask for confirmation.
	// Read at invoke time, nil means "always prompt".
	LogoutPrompt func() bool
}

// Registry holds the fixed, ordered catalog of action kinds. It is
// immutable once built and safe for concurrent reads.
type Registry struct {
	c     Collaborators
	table [lastKind]*Descriptor
}

// NewRegistry builds and validates the descriptor table.
func NewRegistry(c Collaborators) (*Registry, error) {
	r := &Registry{c: c}
	r.buildTable()
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) validate() error {
	for k := None + 1; k < lastKind; k++ {
		d := r.table[k]
		if d == nil || d.Invoke == nil || d.Name == "" {
			return &IncompleteTableError{Kind: k}
		}
	}
	return nil
}

// Descriptor returns the descriptor for a concrete kind.
func (r *Registry) Descriptor(kind Kind) (*Descriptor, error) {
	if !kind.Valid() {
		return nil, &InvalidKindError{Kind: kind}
	}
	return r.table[kind], nil
}

// Name returns the stable name of a kind, or "" for None and out-of-range
// values. Non-fatal: used for display and logging.
func (r *Registry) Name(kind Kind) string {
	if !kind.Valid() {
		logger.Warn("[action] name lookup on invalid kind %d", int(kind))
		return ""
	}
	return r.table[kind].Name
}

// DragID returns the new-instance drag token for a kind, or "" when invalid.
func (r *Registry) DragID(kind Kind) string {
	token, err := Encode(kind, true, 0)
	if err != nil {
		logger.Warn("[action] drag id lookup on invalid kind %d", int(kind))
		return ""
	}
	return token
}

// IsEnabled evaluates the kind's enablement predicate. Kinds without a
// predicate are always enabled; invalid kinds are never enabled. The
// predicate reads policy state at call time, so callers must re-query after
// a policy change notification.
func (r *Registry) IsEnabled(kind Kind) bool {
	if !kind.Valid() {
		logger.Warn("[action] enablement query on invalid kind %d", int(kind))
		return false
	}
	if d := r.table[kind]; d.IsDisabled != nil {
		return !d.IsDisabled()
	}
	return true
}

// Invoke dispatches the kind's primary action exactly once. Handler errors
// pass through opaquely.
func (r *Registry) Invoke(ctx Context, kind Kind) error {
	if !kind.Valid() {
		return &InvalidKindError{Kind: kind}
	}
	logger.Debug("[action] invoking %s", kind)
	return r.table[kind].Invoke(ctx)
}

// InvokeMenuItem dispatches a context menu item. The "help" id is handled
// here for every action by resolving its help topic; all other ids delegate
// to the descriptor, a no-op when it contributes no menu.
func (r *Registry) InvokeMenuItem(ctx Context, kind Kind, itemID string) error {
	d, err := r.Descriptor(kind)
	if err != nil {
		return err
	}

	if itemID == "help" {
		if d.HelpTopic == "" {
			return nil
		}
		launcher, err := r.launcher()
		if err != nil {
			return err
		}
		return launcher.ShowHelp(ctx, d.HelpTopic)
	}

	if d.InvokeMenu != nil {
		return d.InvokeMenu(ctx, itemID)
	}
	return nil
}

// --- collaborator guards ---

func (r *Registry) session() (SessionManager, error) {
	if r.c.Session == nil {
		return nil, &UnavailableError{Collaborator: "session manager"}
	}
	return r.c.Session, nil
}

func (r *Registry) screen() (ScreenLocker, error) {
	if r.c.Screen == nil {
		return nil, &UnavailableError{Collaborator: "screensaver"}
	}
	return r.c.Screen, nil
}

func (r *Registry) launcher() (Launcher, error) {
	if r.c.Launcher == nil {
		return nil, &UnavailableError{Collaborator: "launcher"}
	}
	return r.c.Launcher, nil
}

func (r *Registry) lockedDown() bool {
	return r.c.Lockdown != nil && r.c.Lockdown.LockedDown()
}

func (r *Registry) disableLockScreen() bool {
	return r.c.Lockdown != nil && r.c.Lockdown.DisableLockScreen()
}

func (r *Registry) disableLogOut() bool {
	return r.c.Lockdown != nil && r.c.Lockdown.DisableLogOut()
}

func (r *Registry) disableCommandLine() bool {
	return r.c.Lockdown != nil && r.c.Lockdown.DisableCommandLine()
}

func (r *Registry) disableForceQuit() bool {
	return r.c.Lockdown != nil && r.c.Lockdown.DisableForceQuit()
}

// --- enablement predicates ---

func (r *Registry) screensaverEnabled() bool {
	if r.disableLockScreen() {
		return false
	}
	return r.c.Screen != nil && r.c.Screen.ActionAvailable("lock")
}

func (r *Registry) screensaverPrefsEnabled() bool {
	if r.lockedDown() || r.disableLockScreen() {
		return false
	}
	return r.c.Screen != nil && r.c.Screen.ActionAvailable("prefs")
}

func (r *Registry) shutdownDisabled() bool {
	if r.disableLogOut() {
		return true
	}
	// On Wayland the session manager is bypassed in favor of logind, so an
	// un-locked-down session can always reach the shutdown path.
	if r.c.Wayland {
		return false
	}
	return r.c.Session == nil || !r.c.Session.ShutdownAvailable()
}

// --- handlers ---

func (r *Registry) lockScreen(ctx Context) error {
	screen, err := r.screen()
	if err != nil {
		return err
	}
	return screen.Lock(ctx)
}

func (r *Registry) lockSetupMenu(m MenuRegistrar) {
	m.AddCallback("activate", "", "Activate Screensaver", r.screensaverEnabled)
	m.AddCallback("lock", "", "Lock Screen", r.screensaverEnabled)
	m.AddCallback("prefs", icons.IconProperties, "Properties", r.screensaverPrefsEnabled)
}

func (r *Registry) lockInvokeMenu(ctx Context, itemID string) error {
	screen, err := r.screen()
	if err != nil {
		return err
	}
	return screen.InvokeAction(ctx, itemID)
}

func (r *Registry) logout(ctx Context) error {
	session, err := r.session()
	if err != nil {
		return err
	}

	prompt := true
	if r.c.LogoutPrompt != nil {
		prompt = r.c.LogoutPrompt()
	}

	if !prompt {
		return session.RequestLogout(LogoutNoConfirmation)
	}
	return session.RequestLogout(LogoutNormal)
}

func (r *Registry) runProgram(ctx Context) error {
	launcher, err := r.launcher()
	if err != nil {
		return err
	}
	return launcher.PresentRunDialog(ctx)
}

func (r *Registry) search(ctx Context) error {
	launcher, err := r.launcher()
	if err != nil {
		return err
	}
	return launcher.LaunchDesktopFile(ctx, "mate-search-tool.desktop", "mate-search-tool")
}

func (r *Registry) forceQuit(ctx Context) error {
	launcher, err := r.launcher()
	if err != nil {
		return err
	}
	return launcher.ForceQuit(ctx)
}

func (r *Registry) connectServer(ctx Context) error {
	launcher, err := r.launcher()
	if err != nil {
		return err
	}
	return launcher.ConnectServer(ctx)
}

func (r *Registry) shutdown(ctx Context) error {
	session, err := r.session()
	if err != nil {
		return err
	}
	return session.RequestShutdown()
}

func (r *Registry) buildTable() {
	r.table[Lock] = &Descriptor{
		Name:       kindNames[Lock],
		IconName:   icons.IconLockScreen,
		Text:       "Lock Screen",
		Tooltip:    "Protect your computer from unauthorized use",
		HelpTopic:  "gospanel-21",
		Invoke:     r.lockScreen,
		SetupMenu:  r.lockSetupMenu,
		InvokeMenu: r.lockInvokeMenu,
		IsDisabled: func() bool { return !r.screensaverEnabled() },
	}
	r.table[Logout] = &Descriptor{
		Name:       kindNames[Logout],
		IconName:   icons.IconLogout,
		Text:       "Log Out...",
		Tooltip:    "Log out of this session to log in as a different user",
		HelpTopic:  "gospanel-20",
		Invoke:     r.logout,
		IsDisabled: r.disableLogOut,
	}
	r.table[Run] = &Descriptor{
		Name:       kindNames[Run],
		IconName:   icons.IconRun,
		Text:       "Run Application...",
		Tooltip:    "Run an application by typing a command or choosing from a list",
		HelpTopic:  "gospanel-555",
		Invoke:     r.runProgram,
		IsDisabled: r.disableCommandLine,
	}
	r.table[Search] = &Descriptor{
		Name:      kindNames[Search],
		IconName:  icons.IconSearchTool,
		Text:      "Search for Files...",
		Tooltip:   "Locate documents and folders on this computer by name or content",
		HelpTopic: "gospanel-554",
		Invoke:    r.search,
	}
	r.table[ForceQuit] = &Descriptor{
		Name:       kindNames[ForceQuit],
		IconName:   icons.IconForceQuit,
		Text:       "Force Quit",
		Tooltip:    "Force a misbehaving application to quit",
		HelpTopic:  "gospanel-563",
		Invoke:     r.forceQuit,
		IsDisabled: r.disableForceQuit,
	}
	r.table[ConnectServer] = &Descriptor{
		Name:      kindNames[ConnectServer],
		IconName:  icons.IconRemote,
		Text:      "Connect to Server...",
		Tooltip:   "Connect to a remote computer or shared disk",
		HelpTopic: "caja-server-connect",
		Invoke:    r.connectServer,
	}
	r.table[Shutdown] = &Descriptor{
		Name:       kindNames[Shutdown],
		IconName:   icons.IconShutdown,
		Text:       "Shut Down...",
		Tooltip:    "Shut down the computer",
		HelpTopic:  "gospanel-20",
		Invoke:     r.shutdown,
		IsDisabled: r.shutdownDisabled,
	}
}
