package cronlib

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// EventQueue holds pending events sorted in descending order of fire
// time, so the earliest event sits at the end of the slice and pops in
// O(1). Enqueue locates its position with a binary search over the
// reversed ordering and either merges into the event already due at
// that instant or shifts in a new one.
//
// Invariant: no two events in the queue share a fire time. Jobs due at
// the same instant always land in one event, in enqueue order.
//
// EventQueue is not safe for concurrent use; it is owned by the
// scheduling loop alone.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Enqueue files a job under its NextFire instant: merged into the event
// already due then, or placed as a new event at the sort-preserving
// position.
func (q *EventQueue) Enqueue(job Job) {
	t := job.NextFire

	// First index whose fire time is not after t; the slice is in
	// descending order, so everything before it fires later than t.
	idx := sort.Search(len(q.events), func(i int) bool {
		return !q.events[i].FireTime.After(t)
	})

	if idx < len(q.events) && q.events[idx].FireTime.Equal(t) {
		q.events[idx].add(job)
		return
	}

	q.events = append(q.events, Event{})
	copy(q.events[idx+1:], q.events[idx:])
	q.events[idx] = newEvent(job)
}

// Dequeue removes and returns the earliest event. The second return
// value is false when the queue is empty.
func (q *EventQueue) Dequeue() (Event, bool) {
	n := len(q.events)
	if n == 0 {
		return Event{}, false
	}
	ev := q.events[n-1]
	q.events = q.events[:n-1]
	return ev, true
}

// Peek returns the earliest event without removing it. The second
// return value is false when the queue is empty. The returned event
// shares its job slice with the queue and must not be modified.
func (q *EventQueue) Peek() (Event, bool) {
	n := len(q.events)
	if n == 0 {
		return Event{}, false
	}
	return q.events[n-1], true
}

// EventSummary is a read-only view of one queued event, used for debug
// logging and status reporting.
type EventSummary struct {
	FireTime time.Time
	Jobs     []string
}

// Snapshot returns summaries of all pending events, earliest first.
func (q *EventQueue) Snapshot() []EventSummary {
	out := make([]EventSummary, 0, len(q.events))
	for i := len(q.events) - 1; i >= 0; i-- {
		ev := q.events[i]
		names := make([]string, len(ev.Jobs))
		for j, job := range ev.Jobs {
			names[j] = job.Name
		}
		out = append(out, EventSummary{FireTime: ev.FireTime, Jobs: names})
	}
	return out
}

// String renders the queue compactly for debug logs, earliest first.
func (q *EventQueue) String() string {
	if len(q.events) == 0 {
		return "empty"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d event(s):", len(q.events))
	for _, s := range q.Snapshot() {
		fmt.Fprintf(&b, " [%s: %s]", s.FireTime.Format(time.RFC3339), strings.Join(s.Jobs, ", "))
	}
	return b.String()
}
