package session

const (
	// Session manager (session bus). MATE implements the GNOME session
	// manager interface under this name.
	SM_PREFIX    = "org.gnome.SessionManager"
	SM_PATH      = "/org/gnome/SessionManager"
	SM_INTERFACE = SM_PREFIX

	SM_METHOD_LOGOUT       = SM_INTERFACE + ".Logout"
	SM_METHOD_SHUTDOWN     = SM_INTERFACE + ".Shutdown"
	SM_METHOD_CAN_SHUTDOWN = SM_INTERFACE + ".CanShutdown"

	// logind (system bus), the fallback power path when no session manager
	// owns its bus name.
	LOGIN1_PREFIX    = "org.freedesktop.login1"
	LOGIN1_PATH      = "/org/freedesktop/login1"
	LOGIN1_INTERFACE = LOGIN1_PREFIX + ".Manager"

	LOGIN1_METHOD_POWEROFF     = LOGIN1_INTERFACE + ".PowerOff"
	LOGIN1_CAPABILITY_POWEROFF = LOGIN1_INTERFACE + ".CanPowerOff"
)
