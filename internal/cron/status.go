package cron

import (
	"sync"
	"time"

	"github.com/xcrond/xcrond/pkg/cronlib"
)

// Status is a point-in-time view of the daemon for status reporting.
type Status struct {
	// PID is the daemon's own process id.
	PID int

	// StartedAt is when the daemon came up.
	StartedAt time.Time

	// Events are the pending events, earliest first.
	Events []cronlib.EventSummary
}

// StatusHolder carries the scheduler's latest queue snapshot across
// goroutines. The scheduler publishes at the top of every cycle; the
// RPC server reads whenever a client asks.
type StatusHolder struct {
	mu        sync.Mutex
	pid       int
	startedAt time.Time
	events    []cronlib.EventSummary
}

// NewStatusHolder creates a holder for the given daemon identity.
func NewStatusHolder(pid int, startedAt time.Time) *StatusHolder {
	return &StatusHolder{pid: pid, startedAt: startedAt}
}

// Publish replaces the pending-event snapshot.
func (h *StatusHolder) Publish(events []cronlib.EventSummary) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = events
}

// Get returns a copy of the current status.
func (h *StatusHolder) Get() Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	events := make([]cronlib.EventSummary, len(h.events))
	copy(events, h.events)
	return Status{
		PID:       h.pid,
		StartedAt: h.startedAt,
		Events:    events,
	}
}
