package thing

import "sync"

// Listener receives property change notifications.
type Listener interface {
	// OnPropertyChanged is called when the named property changes.
	OnPropertyChanged(name string, value any)
}

// ListenerFunc wraps fn in a Listener. Each call produces a distinct
// listener identity; keep the returned value around to remove it later.
func ListenerFunc(fn func(name string, value any)) Listener {
	return &funcListener{fn: fn}
}

type funcListener struct {
	fn func(name string, value any)
}

func (l *funcListener) OnPropertyChanged(name string, value any) {
	l.fn(name, value)
}

// Notifier is the optional event-subscription capability of a view.
// Device views that support property change notifications implement
// it; the dispatcher checks for its presence by type assertion rather
// than assuming it.
type Notifier interface {
	// On registers listener for the named event.
	On(event string, listener Listener)

	// RemoveListener unregisters listener from the named event.
	// Listeners are matched by interface identity.
	RemoveListener(event string, listener Listener)
}

// Emitter is the standard Notifier implementation: listeners indexed
// by event name, invoked in registration order. No de-duplication is
// performed; a listener registered twice is invoked twice. Safe for
// concurrent use. The zero value is ready to use.
type Emitter struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
}

// On registers listener for the named event.
func (e *Emitter) On(event string, listener Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.listeners == nil {
		e.listeners = make(map[string][]Listener)
	}
	e.listeners[event] = append(e.listeners[event], listener)
}

// RemoveListener unregisters the first registration of listener for
// the named event.
func (e *Emitter) RemoveListener(event string, listener Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	subs := e.listeners[event]
	for i, s := range subs {
		if s == listener {
			e.listeners[event] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Emit invokes all listeners registered for the named event, in
// registration order, on the calling goroutine.
func (e *Emitter) Emit(event string, value any) {
	e.mu.RLock()
	subs := make([]Listener, len(e.listeners[event]))
	copy(subs, e.listeners[event])
	e.mu.RUnlock()

	for _, s := range subs {
		s.OnPropertyChanged(event, value)
	}
}

// ListenerCount returns the number of listeners registered for the
// named event.
func (e *Emitter) ListenerCount(event string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[event])
}

// Compile-time interface satisfaction check.
var _ Notifier = (*Emitter)(nil)
