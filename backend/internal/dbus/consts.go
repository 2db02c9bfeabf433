package dbus

// Standard D-Bus bus interface names
const (
	DBUS_INTERFACE = "org.freedesktop.DBus"

	BUS_NAME_HAS_OWNER = DBUS_INTERFACE + ".NameHasOwner"
	BUS_GET_NAME_OWNER = DBUS_INTERFACE + ".GetNameOwner"
	DBUS_PROP_IFACE    = DBUS_INTERFACE + ".Properties"

	PROP_GET = DBUS_PROP_IFACE + ".Get"
)
