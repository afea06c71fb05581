package cronlib

import "time"

// Event groups the jobs due at one exact instant. Insertion order of
// Jobs is preserved: jobs merged into an existing event fire after the
// jobs already in it.
type Event struct {
	// FireTime is the instant shared by every job in the event.
	FireTime time.Time

	// Jobs holds the due jobs in enqueue order.
	Jobs []Job
}

// newEvent creates an event holding a single job, due at the job's
// NextFire instant.
func newEvent(job Job) Event {
	return Event{
		FireTime: job.NextFire,
		Jobs:     []Job{job},
	}
}

// add appends a job to the event. The caller guarantees that the job's
// NextFire equals the event's FireTime.
func (e *Event) add(job Job) {
	e.Jobs = append(e.Jobs, job)
}
