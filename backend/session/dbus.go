package session

import (
	"github.com/godbus/dbus/v5"

	idbus "github.com/b0bbywan/go-panel-actions/backend/internal/dbus"
)

func (s *SessionBackend) managerObj() dbus.BusObject {
	return idbus.GetObject(s.conn, SM_PREFIX, SM_PATH)
}

func (s *SessionBackend) logindObj() dbus.BusObject {
	return idbus.GetObject(s.sysConn, LOGIN1_PREFIX, LOGIN1_PATH)
}

func (s *SessionBackend) callManager(method string, args ...interface{}) error {
	return idbus.CallMethod(s.managerObj(), method, args...)
}

// logindCanPowerOff asks logind for the poweroff capability. logind answers
// "yes", "no", "challenge" or "na"; only "yes" counts.
func (s *SessionBackend) logindCanPowerOff() bool {
	if s.sysConn == nil {
		return false
	}
	result, err := idbus.CallForString(s.logindObj(), LOGIN1_CAPABILITY_POWEROFF)
	if err != nil {
		return false
	}
	return result == "yes"
}

func (s *SessionBackend) logindPowerOff() error {
	return idbus.CallMethod(s.logindObj(), LOGIN1_METHOD_POWEROFF, true)
}
