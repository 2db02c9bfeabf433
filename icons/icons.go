package icons

import (
	"sync"

	"github.com/b0bbywan/go-panel-actions/config"
	"github.com/b0bbywan/go-panel-actions/logger"
)

// Panel icon theme names.
const (
	IconLockScreen = "system-lock-screen"
	IconLogout     = "system-log-out"
	IconRun        = "system-run"
	IconSearchTool = "system-search"
	IconForceQuit  = "mate-panel-force-quit"
	IconRemote     = "applications-internet"
	IconShutdown   = "system-shutdown"
	IconHelp       = "help-browser"
	IconProperties = "document-properties"
)

const (
	DefaultMenuIconSize    = 24
	DefaultMenuBarIconSize = 22
	DefaultAddToIconSize   = 32
)

// Size is a registered named icon size.
type Size struct {
	Name   string
	Pixels int
}

// Sizes holds the three panel icon sizes registered at startup.
type Sizes struct {
	Menu    Size
	MenuBar Size
	AddTo   Size
}

var (
	registerOnce sync.Once
	registered   Sizes
)

// computeSizes resolves the configured sizes. A configured value <= 0 falls
// back to the built-in default under the plain registration name; a positive
// value registers under an underscore-prefixed name to prevent themes from
// altering it.
func computeSizes(cfg *config.IconConfig) Sizes {
	var s Sizes

	itemSize := 0
	barSize := 0
	if cfg != nil {
		itemSize = cfg.ItemIconSize
		barSize = cfg.IconSize
	}

	if itemSize <= 0 {
		s.Menu = Size{Name: "panel-menu", Pixels: DefaultMenuIconSize}
	} else {
		s.Menu = Size{Name: "__panel-menu", Pixels: itemSize}
	}

	if barSize <= 0 {
		s.MenuBar = Size{Name: "panel-foobar", Pixels: DefaultMenuBarIconSize}
	} else {
		s.MenuBar = Size{Name: "__panel-foobar", Pixels: barSize}
	}

	s.AddTo = Size{Name: "panel-add-to", Pixels: DefaultAddToIconSize}

	return s
}

// RegisterSizes performs the one-time icon size registration. Later calls
// return the sizes from the first registration regardless of cfg.
func RegisterSizes(cfg *config.IconConfig) Sizes {
	registerOnce.Do(func() {
		registered = computeSizes(cfg)
		logger.Debug("[icons] registered sizes: menu=%s/%d menubar=%s/%d addto=%s/%d",
			registered.Menu.Name, registered.Menu.Pixels,
			registered.MenuBar.Name, registered.MenuBar.Pixels,
			registered.AddTo.Name, registered.AddTo.Pixels,
		)
	})
	return registered
}

// MenuIconSize returns the registered menu icon size.
func MenuIconSize() Size {
	return registered.Menu
}

// MenuBarIconSize returns the registered menu bar icon size.
func MenuBarIconSize() Size {
	return registered.MenuBar
}

// AddToIconSize returns the registered add-to-panel icon size.
func AddToIconSize() Size {
	return registered.AddTo
}
