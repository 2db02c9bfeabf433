package lockdown

import (
	"testing"

	"github.com/b0bbywan/go-panel-actions/config"
)

func TestNewDefaults(t *testing.T) {
	l := New(nil)

	if l.LockedDown() || l.DisableLockScreen() || l.DisableLogOut() ||
		l.DisableCommandLine() || l.DisableForceQuit() {
		t.Error("nil config should leave every action enabled")
	}
}

func TestNewFromConfig(t *testing.T) {
	l := New(&config.LockdownConfig{DisableLogOut: true, DisableForceQuit: true})

	if !l.DisableLogOut() {
		t.Error("DisableLogOut should be true")
	}
	if !l.DisableForceQuit() {
		t.Error("DisableForceQuit should be true")
	}
	if l.DisableCommandLine() {
		t.Error("DisableCommandLine should be false")
	}
}

func TestUpdateNotifiesOnChange(t *testing.T) {
	l := New(nil)

	calls := 0
	l.Notify(func() { calls++ })

	l.Update(&config.LockdownConfig{DisableLogOut: true})
	if calls != 1 {
		t.Fatalf("callback ran %d times, want 1", calls)
	}
	if !l.DisableLogOut() {
		t.Error("flag should be visible from the callback onward")
	}
}

func TestUpdateSkipsNotifyWhenUnchanged(t *testing.T) {
	l := New(&config.LockdownConfig{DisableLogOut: true})

	calls := 0
	l.Notify(func() { calls++ })

	l.Update(&config.LockdownConfig{DisableLogOut: true})
	if calls != 0 {
		t.Errorf("callback ran %d times for an identical flag set, want 0", calls)
	}

	l.Update(nil)
	if calls != 0 {
		t.Errorf("callback ran %d times for a nil update, want 0", calls)
	}
}

func TestNotifyRemove(t *testing.T) {
	l := New(nil)

	first, second := 0, 0
	removeFirst := l.Notify(func() { first++ })
	l.Notify(func() { second++ })

	l.Update(&config.LockdownConfig{LockedDown: true})
	removeFirst()
	l.Update(&config.LockdownConfig{LockedDown: false})

	if first != 1 {
		t.Errorf("removed callback ran %d times, want 1", first)
	}
	if second != 2 {
		t.Errorf("remaining callback ran %d times, want 2", second)
	}
}
