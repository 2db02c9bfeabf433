package screensaver

import (
	"context"
	"os/exec"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/b0bbywan/go-panel-actions/action"
	idbus "github.com/b0bbywan/go-panel-actions/backend/internal/dbus"
	"github.com/b0bbywan/go-panel-actions/cache"
	"github.com/b0bbywan/go-panel-actions/config"
	"github.com/b0bbywan/go-panel-actions/logger"
)

var _ action.ScreenLocker = (*ScreenSaverBackend)(nil)

// ScreenSaverBackend drives the session screensaver for the Lock action and
// its context menu items.
type ScreenSaverBackend struct {
	conn      *dbus.Conn
	ctx       context.Context
	prefsTool string
	// PATH probes are repeated by enablement predicates on every policy
	// change; cache them briefly.
	pathCache *cache.Cache[bool]
}

// New creates the screensaver backend. Returns nil when disabled.
func New(ctx context.Context, cfg *config.ScreensaverConfig) (*ScreenSaverBackend, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}

	backend := &ScreenSaverBackend{
		conn:      conn,
		ctx:       ctx,
		prefsTool: cfg.PreferencesTool,
		pathCache: cache.New[bool](30 * time.Second),
	}

	logger.Info("[screensaver] backend initialized")
	return backend, nil
}

// Close cleanly closes the bus connection.
func (s *ScreenSaverBackend) Close() {
	if s.conn != nil {
		if err := s.conn.Close(); err != nil {
			logger.Error("[screensaver] failed to close session bus: %v", err)
		}
		s.conn = nil
	}
}

func (s *ScreenSaverBackend) saverObj() dbus.BusObject {
	return idbus.GetObject(s.conn, SAVER_PREFIX, SAVER_PATH)
}

// Lock locks the screen.
func (s *ScreenSaverBackend) Lock(ctx action.Context) error {
	logger.Info("[screensaver] lock requested")
	return idbus.CallMethod(s.saverObj(), SAVER_METHOD_LOCK)
}

// Activate starts the screensaver without locking.
func (s *ScreenSaverBackend) Activate(ctx action.Context) error {
	logger.Info("[screensaver] activate requested")
	return idbus.CallMethod(s.saverObj(), SAVER_METHOD_SET_ACTIVE, true)
}

// InvokeAction dispatches a lock-button menu item by name.
func (s *ScreenSaverBackend) InvokeAction(ctx action.Context, name string) error {
	switch name {
	case "lock":
		return s.Lock(ctx)
	case "activate":
		return s.Activate(ctx)
	case "prefs":
		return s.openPreferences()
	}
	logger.Warn("[screensaver] unknown action %q ignored", name)
	return nil
}

// ActionAvailable reports whether a menu action can currently work: lock and
// activate need the screensaver on the bus, prefs needs its tool installed.
func (s *ScreenSaverBackend) ActionAvailable(name string) bool {
	switch name {
	case "lock", "activate":
		return idbus.NameHasOwner(s.conn, SAVER_PREFIX)
	case "prefs":
		return s.prefsToolInstalled()
	}
	return false
}

func (s *ScreenSaverBackend) prefsToolInstalled() bool {
	if s.prefsTool == "" {
		return false
	}
	if installed, ok := s.pathCache.Get(s.prefsTool); ok {
		return installed
	}
	_, err := exec.LookPath(s.prefsTool)
	installed := err == nil
	s.pathCache.Set(s.prefsTool, installed)
	return installed
}

func (s *ScreenSaverBackend) openPreferences() error {
	if !s.prefsToolInstalled() {
		return &NotAvailableError{Action: "prefs"}
	}
	logger.Debug("[screensaver] launching %s", s.prefsTool)
	cmd := exec.Command(s.prefsTool)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Warn("[screensaver] %s exited: %v", s.prefsTool, err)
		}
	}()
	return nil
}
