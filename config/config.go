package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/b0bbywan/go-panel-actions/logger"
)

const (
	AppName    = "panel-actions"
	AppVersion = "0.1.0"
)

// DisplayServer identifies the windowing system the panel session runs on.
type DisplayServer string

const (
	DisplayX11     DisplayServer = "x11"
	DisplayWayland DisplayServer = "wayland"
)

type Config struct {
	Session     *SessionConfig
	Screensaver *ScreensaverConfig
	Lockdown    *LockdownConfig
	Icons       *IconConfig
	Launcher    *LauncherConfig
	Buttons     []ButtonConfig
	Display     DisplayServer
	LogLevel    logger.Level

	// Path is the resolved config file, empty when running on defaults.
	Path string
}

type SessionConfig struct {
	Enabled bool
	// LogoutPrompt mirrors the session manager's logout confirmation
	// setting: when false, logout requests skip the confirmation dialog.
	LogoutPrompt bool
}

type ScreensaverConfig struct {
	Enabled         bool
	PreferencesTool string
}

// LockdownConfig is the lockdown/policy boolean set. Each flag disables one
// action (or class of actions) for the session.
type LockdownConfig struct {
	LockedDown         bool
	DisableCommandLine bool
	DisableLockScreen  bool
	DisableLogOut      bool
	DisableForceQuit   bool
}

type IconConfig struct {
	// Sizes <= 0 select the built-in defaults.
	ItemIconSize int
	IconSize     int
}

type LauncherConfig struct {
	RunDialogCommand string
	ForceQuitCommand string
	HelpViewer       string
	HelpDocument     string
}

// ButtonConfig declares one action button hosted by the panel.
type ButtonConfig struct {
	ID     string `mapstructure:"id"`
	Action string `mapstructure:"action"`
}

// parseLogLevel converts a string to a logger.Level
func parseLogLevel(levelStr string) logger.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return logger.DEBUG
	case "INFO":
		return logger.INFO
	case "WARN":
		return logger.WARN
	case "ERROR":
		return logger.ERROR
	case "FATAL":
		return logger.FATAL
	default:
		return logger.WARN // default
	}
}

// parseDisplay resolves the configured display server, falling back to
// environment detection for "auto" or unrecognized values.
func parseDisplay(value string) DisplayServer {
	switch strings.ToLower(value) {
	case "x11":
		return DisplayX11
	case "wayland":
		return DisplayWayland
	}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return DisplayWayland
	}
	return DisplayX11
}

func New() (*Config, error) {
	viper.SetDefault("session.enabled", true)
	viper.SetDefault("session.logout-prompt", true)

	viper.SetDefault("screensaver.enabled", true)
	viper.SetDefault("screensaver.preferences-tool", "mate-screensaver-preferences")

	viper.SetDefault("lockdown.locked-down", false)
	viper.SetDefault("lockdown.disable-command-line", false)
	viper.SetDefault("lockdown.disable-lock-screen", false)
	viper.SetDefault("lockdown.disable-log-out", false)
	viper.SetDefault("lockdown.disable-force-quit", false)

	viper.SetDefault("icons.item-icon-size", 0)
	viper.SetDefault("icons.icon-size", 0)

	viper.SetDefault("launcher.run-dialog", "mate-panel --run-dialog")
	viper.SetDefault("launcher.force-quit", "xkill")
	viper.SetDefault("launcher.help-viewer", "yelp")
	viper.SetDefault("launcher.help-document", "mate-user-guide")

	viper.SetDefault("buttons", []ButtonConfig{})
	viper.SetDefault("display", "auto")
	viper.SetDefault("LogLevel", "WARN")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join("/etc", AppName))
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", AppName))
	}

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, continue with defaults if not found
		if _, isNotFound := err.(viper.ConfigFileNotFoundError); !isNotFound {
			logger.Warn("failed to read config: %v", err)
		}
	}

	var buttons []ButtonConfig
	if err := viper.UnmarshalKey("buttons", &buttons); err != nil {
		logger.Warn("invalid buttons config: %v", err)
	}

	sessioncfg := SessionConfig{
		Enabled:      viper.GetBool("session.enabled"),
		LogoutPrompt: viper.GetBool("session.logout-prompt"),
	}

	savercfg := ScreensaverConfig{
		Enabled:         viper.GetBool("screensaver.enabled"),
		PreferencesTool: viper.GetString("screensaver.preferences-tool"),
	}

	lockcfg := LockdownConfig{
		LockedDown:         viper.GetBool("lockdown.locked-down"),
		DisableCommandLine: viper.GetBool("lockdown.disable-command-line"),
		DisableLockScreen:  viper.GetBool("lockdown.disable-lock-screen"),
		DisableLogOut:      viper.GetBool("lockdown.disable-log-out"),
		DisableForceQuit:   viper.GetBool("lockdown.disable-force-quit"),
	}

	iconcfg := IconConfig{
		ItemIconSize: viper.GetInt("icons.item-icon-size"),
		IconSize:     viper.GetInt("icons.icon-size"),
	}

	launchcfg := LauncherConfig{
		RunDialogCommand: viper.GetString("launcher.run-dialog"),
		ForceQuitCommand: viper.GetString("launcher.force-quit"),
		HelpViewer:       viper.GetString("launcher.help-viewer"),
		HelpDocument:     viper.GetString("launcher.help-document"),
	}

	cfg := Config{
		Session:     &sessioncfg,
		Screensaver: &savercfg,
		Lockdown:    &lockcfg,
		Icons:       &iconcfg,
		Launcher:    &launchcfg,
		Buttons:     buttons,
		Display:     parseDisplay(viper.GetString("display")),
		LogLevel:    parseLogLevel(viper.GetString("LogLevel")),
		Path:        viper.ConfigFileUsed(),
	}

	return &cfg, nil
}
