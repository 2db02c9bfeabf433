package session

import (
	"context"

	"github.com/godbus/dbus/v5"

	"github.com/b0bbywan/go-panel-actions/action"
	idbus "github.com/b0bbywan/go-panel-actions/backend/internal/dbus"
	"github.com/b0bbywan/go-panel-actions/config"
	"github.com/b0bbywan/go-panel-actions/events"
	"github.com/b0bbywan/go-panel-actions/logger"
)

var _ action.SessionManager = (*SessionBackend)(nil)

// New creates the session backend. Returns nil when disabled.
func New(ctx context.Context, cfg *config.SessionConfig) (*SessionBackend, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}

	backend := &SessionBackend{
		conn:    conn,
		ctx:     ctx,
		eventsC: make(chan events.Event, 4),
	}

	backend.hasManager = idbus.NameHasOwner(conn, SM_PREFIX)
	if !backend.hasManager {
		logger.Warn("[session] no session manager on the bus, trying logind fallback")
		sysConn, err := dbus.ConnectSystemBus()
		if err != nil {
			logger.Error("[session] logind fallback unavailable: %v", err)
		} else {
			backend.sysConn = sysConn
		}
	}

	logger.Info("[session] backend initialized (manager=%v)", backend.hasManager)
	return backend, nil
}

// Close cleanly closes the bus connections.
func (s *SessionBackend) Close() {
	if s.conn != nil {
		if err := s.conn.Close(); err != nil {
			logger.Error("[session] failed to close session bus: %v", err)
		}
		s.conn = nil
	}
	if s.sysConn != nil {
		if err := s.sysConn.Close(); err != nil {
			logger.Error("[session] failed to close system bus: %v", err)
		}
		s.sysConn = nil
	}
}

func (s *SessionBackend) Events() <-chan events.Event {
	return s.eventsC
}

func (s *SessionBackend) notify(actionName string) {
	e := events.Event{Type: events.TypePowerAction, Data: PowerActionData{Action: actionName}}
	select {
	case s.eventsC <- e:
	default:
		logger.Warn("[session] event channel full, dropping %s event", events.TypePowerAction)
	}
}

// RequestLogout asks the session manager to end the session. There is no
// logind equivalent for a session-level logout.
func (s *SessionBackend) RequestLogout(mode action.LogoutMode) error {
	if !s.hasManager {
		return &CapabilityError{Required: "a running session manager"}
	}
	logger.Info("[session] logout requested (mode %d)", uint32(mode))
	s.notify("logout")
	return s.callManager(SM_METHOD_LOGOUT, uint32(mode))
}

// RequestShutdown asks the session manager to shut the system down, falling
// back to logind PowerOff when no manager is running.
func (s *SessionBackend) RequestShutdown() error {
	logger.Info("[session] shutdown requested")
	s.notify("shutdown")
	if s.hasManager {
		return s.callManager(SM_METHOD_SHUTDOWN)
	}
	if s.sysConn != nil {
		return s.logindPowerOff()
	}
	return &CapabilityError{Required: "a session manager or logind"}
}

// ShutdownAvailable reports whether a shutdown request could succeed.
// Consulted by the shutdown enablement predicate on every query.
func (s *SessionBackend) ShutdownAvailable() bool {
	if s.hasManager {
		available, err := idbus.CallForBool(s.managerObj(), SM_METHOD_CAN_SHUTDOWN)
		if err != nil {
			logger.Debug("[session] CanShutdown query failed: %v", err)
			return false
		}
		return available
	}
	return s.logindCanPowerOff()
}
