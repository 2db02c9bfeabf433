package screensaver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/b0bbywan/go-panel-actions/cache"
	"github.com/b0bbywan/go-panel-actions/config"
)

func TestNew_NilConfig(t *testing.T) {
	b, err := New(context.Background(), nil)
	if err != nil {
		t.Errorf("New(nil) should return nil error, got: %v", err)
	}
	if b != nil {
		t.Errorf("New(nil) should return nil backend, got: %v", b)
	}
}

func TestNew_DisabledConfig(t *testing.T) {
	cfg := &config.ScreensaverConfig{Enabled: false}
	b, err := New(context.Background(), cfg)
	if err != nil {
		t.Errorf("New(disabled) should return nil error, got: %v", err)
	}
	if b != nil {
		t.Errorf("New(disabled) should return nil backend, got: %v", b)
	}
}

func TestClose_NilConn(t *testing.T) {
	b := &ScreenSaverBackend{}
	// Should not panic
	b.Close()
	b.Close()
}

func TestActionAvailable_UnknownAction(t *testing.T) {
	b := &ScreenSaverBackend{pathCache: cache.New[bool](time.Minute)}
	if b.ActionAvailable("frobnicate") {
		t.Error("unknown action should never be available")
	}
}

func TestPrefsToolInstalled(t *testing.T) {
	b := &ScreenSaverBackend{pathCache: cache.New[bool](time.Minute)}

	b.prefsTool = ""
	if b.prefsToolInstalled() {
		t.Error("empty prefs tool should never be installed")
	}

	// "sh" is in PATH on any platform this backend targets
	b.prefsTool = "sh"
	if !b.prefsToolInstalled() {
		t.Error("sh should be found in PATH")
	}

	b.prefsTool = "panel-actions-no-such-tool"
	if b.prefsToolInstalled() {
		t.Error("nonexistent tool should not be found")
	}
}

func TestPrefsToolLookupCached(t *testing.T) {
	b := &ScreenSaverBackend{
		prefsTool: "panel-actions-no-such-tool",
		pathCache: cache.New[bool](time.Minute),
	}

	b.prefsToolInstalled()
	if _, ok := b.pathCache.Get("panel-actions-no-such-tool"); !ok {
		t.Error("lookup result should be cached")
	}

	// A cached positive short-circuits the PATH probe entirely
	b.pathCache.Set("panel-actions-no-such-tool", true)
	if !b.prefsToolInstalled() {
		t.Error("cached result should win over a fresh PATH probe")
	}
}

func TestOpenPreferences_NotInstalled(t *testing.T) {
	b := &ScreenSaverBackend{
		prefsTool: "panel-actions-no-such-tool",
		pathCache: cache.New[bool](time.Minute),
	}

	err := b.openPreferences()
	if err == nil {
		t.Fatal("openPreferences should fail for a missing tool")
	}
	var notAvail *NotAvailableError
	if !errors.As(err, &notAvail) {
		t.Errorf("error = %T, want *NotAvailableError", err)
	}
}

var _ error = (*NotAvailableError)(nil)
