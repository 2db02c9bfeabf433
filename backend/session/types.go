package session

import (
	"context"

	"github.com/godbus/dbus/v5"

	"github.com/b0bbywan/go-panel-actions/events"
)

// SessionBackend talks to the session manager for logout and shutdown, with
// a logind fallback for power operations when no session manager is running.
type SessionBackend struct {
	conn    *dbus.Conn // session bus
	sysConn *dbus.Conn // system bus, logind fallback only
	ctx     context.Context
	eventsC chan events.Event

	// hasManager is probed once at startup: the session manager either
	// started before the panel or not at all.
	hasManager bool
}

// PowerActionData describes a requested power/session transition.
type PowerActionData struct {
	Action string
}
