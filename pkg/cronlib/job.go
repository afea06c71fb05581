package cronlib

import (
	"fmt"
	"strings"
	"time"
)

// Job is a recurring unit of work: a command plus the schedule that
// decides when it runs next. Jobs are immutable by convention; the
// scheduling loop never mutates a queued Job, it builds an advanced
// copy via Advance and enqueues that instead.
type Job struct {
	// Name identifies the job in logs and status output.
	// It carries no uniqueness guarantee.
	Name string

	// Path is the executable to run.
	Path string

	// Args is the full argument vector passed to the process,
	// including the executable itself as Args[0].
	Args []string

	// Schedule is the compiled recurrence rule.
	Schedule Schedule

	// PrevFire is the last computed occurrence, zero until the job
	// has been advanced at least once.
	PrevFire time.Time

	// NextFire is the instant the job is due to run.
	NextFire time.Time
}

// NewJob builds a Job from a descriptor: the command line is split into
// an argument vector on whitespace, the cron expression is compiled, and
// the first occurrence strictly after now becomes NextFire.
//
// Returns ErrEmptyCommand, ErrInvalidExpression or ErrScheduleExhausted.
// Callers are expected to log and skip a failing descriptor, never to
// abort the daemon over one bad job.
func NewJob(name, command, expr string, now time.Time) (Job, error) {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return Job{}, fmt.Errorf("%w (job %q)", ErrEmptyCommand, name)
	}
	sched, err := Parse(expr)
	if err != nil {
		return Job{}, err
	}
	next, err := sched.Next(now)
	if err != nil {
		return Job{}, err
	}
	return Job{
		Name:     name,
		Path:     argv[0],
		Args:     argv,
		Schedule: sched,
		NextFire: next,
	}, nil
}

// Advance returns a copy of the job moved to its next occurrence:
// PrevFire takes the old NextFire and NextFire becomes the first
// occurrence strictly after reference. Returns ErrScheduleExhausted
// when no occurrence remains; the caller drops the job in that case.
func (j Job) Advance(reference time.Time) (Job, error) {
	next, err := j.Schedule.Next(reference)
	if err != nil {
		return Job{}, err
	}
	adv := j
	adv.PrevFire = j.NextFire
	adv.NextFire = next
	return adv, nil
}
