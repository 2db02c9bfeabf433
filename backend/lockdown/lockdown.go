package lockdown

import (
	"sync"

	"github.com/b0bbywan/go-panel-actions/action"
	"github.com/b0bbywan/go-panel-actions/config"
	"github.com/b0bbywan/go-panel-actions/logger"
)

var _ action.Lockdown = (*Lockdown)(nil)

// Lockdown holds the session's lockdown policy flags and fans out change
// notifications. Enablement predicates read it on every query, so updates
// take effect without any refresh step on the registry side.
type Lockdown struct {
	mu    sync.RWMutex
	flags config.LockdownConfig

	nextID    int
	callbacks map[int]func()
}

func New(cfg *config.LockdownConfig) *Lockdown {
	l := &Lockdown{
		callbacks: make(map[int]func()),
	}
	if cfg != nil {
		l.flags = *cfg
	}
	return l
}

// Update replaces the flag set. Registered callbacks run only when
// something actually changed.
func (l *Lockdown) Update(cfg *config.LockdownConfig) {
	if cfg == nil {
		return
	}

	l.mu.Lock()
	changed := l.flags != *cfg
	l.flags = *cfg
	var callbacks []func()
	if changed {
		callbacks = make([]func(), 0, len(l.callbacks))
		for _, fn := range l.callbacks {
			callbacks = append(callbacks, fn)
		}
	}
	l.mu.Unlock()

	if !changed {
		return
	}

	logger.Info("[lockdown] policy flags updated")
	for _, fn := range callbacks {
		fn()
	}
}

// Notify registers a policy change callback and returns its removal
// function. Callbacks run synchronously on the updating goroutine and must
// not block.
func (l *Lockdown) Notify(fn func()) (remove func()) {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.callbacks[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.callbacks, id)
		l.mu.Unlock()
	}
}

func (l *Lockdown) LockedDown() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.flags.LockedDown
}

func (l *Lockdown) DisableLockScreen() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.flags.DisableLockScreen
}

func (l *Lockdown) DisableLogOut() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.flags.DisableLogOut
}

func (l *Lockdown) DisableCommandLine() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.flags.DisableCommandLine
}

func (l *Lockdown) DisableForceQuit() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.flags.DisableForceQuit
}
