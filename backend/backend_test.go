package backend

import (
	"context"
	"testing"

	"github.com/b0bbywan/go-panel-actions/config"
)

func disabledConfig() *config.Config {
	return &config.Config{
		Session:     &config.SessionConfig{Enabled: false, LogoutPrompt: true},
		Screensaver: &config.ScreensaverConfig{Enabled: false},
		Lockdown:    &config.LockdownConfig{},
		Launcher:    &config.LauncherConfig{},
		Display:     config.DisplayX11,
	}
}

func TestNewWithEverythingDisabled(t *testing.T) {
	cfg := disabledConfig()

	b, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if b.Session != nil {
		t.Error("Session should be nil when disabled")
	}
	if b.Screen != nil {
		t.Error("Screen should be nil when disabled")
	}
	if b.Lockdown == nil {
		t.Error("Lockdown should always be built")
	}
	if b.Launcher == nil {
		t.Error("Launcher should always be built")
	}

	// Close with nil backends should not panic
	b.Close()
}

func TestCollaboratorsNilInterfaces(t *testing.T) {
	cfg := disabledConfig()
	b, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	c := b.Collaborators(cfg)

	// A disabled backend must yield a nil interface, not a typed nil
	if c.Session != nil {
		t.Error("Session interface should be nil when the backend is nil")
	}
	if c.Screen != nil {
		t.Error("Screen interface should be nil when the backend is nil")
	}
	if c.Lockdown == nil {
		t.Error("Lockdown interface should be set")
	}
	if c.Launcher == nil {
		t.Error("Launcher interface should be set")
	}
	if c.Wayland {
		t.Error("Wayland should be false for an X11 display")
	}
}

func TestCollaboratorsLogoutPrompt(t *testing.T) {
	cfg := disabledConfig()
	b, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	c := b.Collaborators(cfg)
	if c.LogoutPrompt == nil || !c.LogoutPrompt() {
		t.Error("LogoutPrompt should default to true")
	}

	cfg.Session.LogoutPrompt = false
	if c.LogoutPrompt() {
		t.Error("LogoutPrompt should follow the config value")
	}
}
