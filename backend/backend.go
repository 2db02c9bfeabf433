package backend

import (
	"context"

	"github.com/b0bbywan/go-panel-actions/action"
	"github.com/b0bbywan/go-panel-actions/backend/launcher"
	"github.com/b0bbywan/go-panel-actions/backend/lockdown"
	"github.com/b0bbywan/go-panel-actions/backend/screensaver"
	"github.com/b0bbywan/go-panel-actions/backend/session"
	"github.com/b0bbywan/go-panel-actions/config"
)

// Backend aggregates the desktop collaborators the action registry is wired
// to. Session and Screen are nil when disabled in config.
type Backend struct {
	Session  *session.SessionBackend
	Screen   *screensaver.ScreenSaverBackend
	Lockdown *lockdown.Lockdown
	Launcher *launcher.Launcher
}

func New(ctx context.Context, cfg *config.Config) (*Backend, error) {
	var backend Backend

	s, err := session.New(ctx, cfg.Session)
	if err != nil {
		return nil, err
	}
	backend.Session = s

	saver, err := screensaver.New(ctx, cfg.Screensaver)
	if err != nil {
		return nil, err
	}
	backend.Screen = saver

	backend.Lockdown = lockdown.New(cfg.Lockdown)
	backend.Launcher = launcher.New(cfg.Launcher, cfg.Display)

	return &backend, nil
}

// Collaborators bundles the backends for registry construction, leaving the
// interface fields nil for disabled backends.
func (b *Backend) Collaborators(cfg *config.Config) action.Collaborators {
	c := action.Collaborators{
		Wayland: cfg.Display == config.DisplayWayland,
		LogoutPrompt: func() bool {
			return cfg.Session == nil || cfg.Session.LogoutPrompt
		},
	}
	if b.Session != nil {
		c.Session = b.Session
	}
	if b.Screen != nil {
		c.Screen = b.Screen
	}
	if b.Lockdown != nil {
		c.Lockdown = b.Lockdown
	}
	if b.Launcher != nil {
		c.Launcher = b.Launcher
	}
	return c
}

func (b *Backend) Close() {
	if b.Session != nil {
		b.Session.Close()
	}
	if b.Screen != nil {
		b.Screen.Close()
	}
}
