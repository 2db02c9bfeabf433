package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	sddaemon "github.com/coreos/go-systemd/v22/daemon"

	"github.com/b0bbywan/go-panel-actions/action"
	"github.com/b0bbywan/go-panel-actions/backend"
	"github.com/b0bbywan/go-panel-actions/button"
	"github.com/b0bbywan/go-panel-actions/config"
	"github.com/b0bbywan/go-panel-actions/icons"
	"github.com/b0bbywan/go-panel-actions/logger"
)

// logView traces display effects until a real widget host attaches.
type logView struct {
	id string
}

func (v *logView) SetIconName(name string) {
	logger.Debug("[%s] icon -> %s", v.id, name)
}

func (v *logView) SetTooltip(text string) {
	logger.Debug("[%s] tooltip -> %s", v.id, text)
}

func (v *logView) SetActivatable(ok bool) {
	logger.Info("[%s] activatable -> %v", v.id, ok)
}

func (v *logView) EnableDragSource(mimeType string) {
	logger.Debug("[%s] drag source enabled (%s)", v.id, mimeType)
}

func (v *logView) DisableDragSource() {
	logger.Debug("[%s] drag source disabled", v.id)
}

func (v *logView) SetDragIcon(name string) {
	logger.Debug("[%s] drag icon -> %s", v.id, name)
}

func loadButtons(cfg *config.Config, registry *action.Registry) map[string]*button.Button {
	buttons := make(map[string]*button.Button, len(cfg.Buttons))
	for _, bc := range cfg.Buttons {
		kind, found := action.KindForName(bc.Action)
		if !found {
			logger.Warn("[%s] unknown action %q, button skipped", config.AppName, bc.Action)
			continue
		}
		b := button.New(bc.ID, registry, &logView{id: bc.ID})
		b.Bind(kind)
		b.SetDnDEnabled(true)
		buttons[bc.ID] = b
	}
	return buttons
}

func main() {
	cfg, err := config.New()
	if err != nil {
		logger.Fatal("[%s] Failed to load config: %v", config.AppName, err)
	}

	// Set log level from config
	logger.SetLevel(cfg.LogLevel)

	// One-time icon size registration, before any button binds
	icons.RegisterSizes(cfg.Icons)

	// Global context for the entire application
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b, err := backend.New(ctx, cfg)
	if err != nil {
		logger.Fatal("[%s] Backend initialization failed: %v", config.AppName, err)
	}

	registry, err := action.NewRegistry(b.Collaborators(cfg))
	if err != nil {
		logger.Fatal("[%s] Registry construction failed: %v", config.AppName, err)
	}

	buttons := loadButtons(cfg, registry)

	// Trace power transitions requested through the session backend
	if b.Session != nil {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case e := <-b.Session.Events():
					logger.Info("[%s] power event: %+v", config.AppName, e.Data)
				}
			}
		}()
	}

	// Lockdown flag flips re-evaluate every button's enablement
	removeNotify := b.Lockdown.Notify(func() {
		for _, btn := range buttons {
			btn.OnPolicyChanged()
		}
	})
	defer removeNotify()

	// Config changes feed the lockdown flags and button kinds
	watcher := config.NewWatcher(ctx, cfg, func(fresh *config.Config) {
		b.Lockdown.Update(fresh.Lockdown)
		cfg.Session.LogoutPrompt = fresh.Session.LogoutPrompt
		for _, bc := range fresh.Buttons {
			btn, ok := buttons[bc.ID]
			if !ok {
				continue
			}
			if kind, found := action.KindForName(bc.Action); found {
				btn.OnKindChanged(kind)
			}
		}
	})
	if err := watcher.Start(); err != nil {
		logger.Error("[%s] config watcher failed: %v", config.AppName, err)
	}

	// Channel to synchronize shutdown
	shutdownDone := make(chan struct{})
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		logger.Info("[%s] Shutdown signal received, stopping...", config.AppName)

		if _, err := sddaemon.SdNotify(false, sddaemon.SdNotifyStopping); err != nil {
			logger.Debug("[%s] sd_notify stopping failed: %v", config.AppName, err)
		}

		// Cancel the global context - stops all listeners
		cancel()

		// Cleanup backends
		b.Close()

		close(shutdownDone)
	}()

	if _, err := sddaemon.SdNotify(false, sddaemon.SdNotifyReady); err != nil {
		logger.Debug("[%s] sd_notify ready failed: %v", config.AppName, err)
	}
	logger.Info("[%s] started with %d button(s)", config.AppName, len(buttons))

	<-shutdownDone
	logger.Info("[%s] stopped", config.AppName)
}
