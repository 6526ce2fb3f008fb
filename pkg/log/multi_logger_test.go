package log

import (
	"sync"
	"testing"
	"time"
)

// recordingLogger captures events for assertions.
type recordingLogger struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingLogger) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestMultiLoggerFanOut(t *testing.T) {
	a := &recordingLogger{}
	b := &recordingLogger{}
	m := NewMultiLogger(a, b)

	m.Log(Event{Timestamp: time.Now(), Op: OpGet, Outcome: OutcomeOK})
	m.Log(Event{Timestamp: time.Now(), Op: OpSet, Outcome: OutcomeError})

	if a.count() != 2 || b.count() != 2 {
		t.Errorf("counts = %d, %d; want 2, 2", a.count(), b.count())
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	m := NewMultiLogger()
	// Must not panic with no delegates.
	m.Log(Event{Timestamp: time.Now(), Op: OpGet, Outcome: OutcomeOK})
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Log(Event{Timestamp: time.Now(), Op: OpInvoke, Outcome: OutcomeOK})
}
