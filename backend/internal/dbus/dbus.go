package dbus

import (
	"time"

	"github.com/godbus/dbus/v5"
)

// DefaultTimeout is the timeout used for all D-Bus calls.
var DefaultTimeout = 5 * time.Second

// CallWithTimeout executes a D-Bus call with the default timeout.
func CallWithTimeout(call *dbus.Call) error {
	done := make(chan error, 1)
	go func() { done <- call.Err }()
	select {
	case err := <-done:
		return err
	case <-time.After(DefaultTimeout):
		return &TimeoutError{}
	}
}

// GetObject returns a D-Bus object for the given service and object path.
func GetObject(conn *dbus.Conn, service, path string) dbus.BusObject {
	return conn.Object(service, dbus.ObjectPath(path))
}

// CallMethod calls a method on a D-Bus object with the default timeout.
func CallMethod(obj dbus.BusObject, method string, args ...interface{}) error {
	return CallWithTimeout(obj.Call(method, 0, args...))
}

// CallForString calls a method expecting a single string reply.
func CallForString(obj dbus.BusObject, method string, args ...interface{}) (string, error) {
	call := obj.Call(method, 0, args...)
	if err := CallWithTimeout(call); err != nil {
		return "", err
	}
	var result string
	if err := call.Store(&result); err != nil {
		return "", err
	}
	return result, nil
}

// CallForBool calls a method expecting a single boolean reply.
func CallForBool(obj dbus.BusObject, method string, args ...interface{}) (bool, error) {
	call := obj.Call(method, 0, args...)
	if err := CallWithTimeout(call); err != nil {
		return false, err
	}
	var result bool
	if err := call.Store(&result); err != nil {
		return false, err
	}
	return result, nil
}

// NameHasOwner reports whether a bus name is currently owned, i.e. whether
// the service behind it is reachable.
func NameHasOwner(conn *dbus.Conn, name string) bool {
	owned, err := CallForBool(conn.BusObject(), BUS_NAME_HAS_OWNER, name)
	if err != nil {
		return false
	}
	return owned
}
