// Package cronlib implements the scheduling data model for xcrond:
// cron schedules, jobs, events, and the time-ordered event queue.
//
// A Job pairs a command with a compiled cron Schedule and carries the
// previous and next instants it is due. Jobs due at exactly the same
// instant are grouped into one Event, and Events are held in an
// EventQueue sorted so the earliest event pops in constant time.
//
// The queue is not safe for concurrent use. The daemon's scheduling
// loop is its only owner; everything else sees read-only snapshots.
package cronlib
