package screensaver

const (
	SAVER_PREFIX    = "org.mate.ScreenSaver"
	SAVER_PATH      = "/org/mate/ScreenSaver"
	SAVER_INTERFACE = SAVER_PREFIX

	SAVER_METHOD_LOCK       = SAVER_INTERFACE + ".Lock"
	SAVER_METHOD_SET_ACTIVE = SAVER_INTERFACE + ".SetActive"
)
