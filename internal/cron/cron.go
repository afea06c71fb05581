package cron

import (
	"context"
	"time"

	"github.com/xcrond/xcrond/pkg/cronlib"
	"github.com/xcrond/xcrond/pkg/jobfile"
	"github.com/xcrond/xcrond/pkg/logger"
)

// Default timing knobs for the scheduling loop.
const (
	// DefaultAdvanceGuard is added to the clock before computing a
	// job's next occurrence, so a job firing at second boundaries
	// never lands on the occurrence it just ran.
	DefaultAdvanceGuard = time.Second

	// DefaultRetryDelay is how long the loop backs off after the
	// clock reports an event in the past, and how far that event is
	// pushed forward before it is retried.
	DefaultRetryDelay = time.Minute
)

// SpawnFunc launches the process for one job and returns its pid.
type SpawnFunc func(job cronlib.Job) (int, error)

// SpawnRecorder persists a spawned process into the run ledger.
// *history.Store satisfies it.
type SpawnRecorder interface {
	RecordSpawn(ctx context.Context, jobName string, pid int, fireTime, spawnedAt time.Time) error
}

// Config holds the timing configuration for the scheduler.
type Config struct {
	// AdvanceGuard is the margin added to now before advancing a
	// fired job. Defaults to DefaultAdvanceGuard.
	AdvanceGuard time.Duration

	// RetryDelay is the back-off applied when an event's fire time
	// is already behind the clock. Defaults to DefaultRetryDelay.
	RetryDelay time.Duration
}

// Dependencies holds the external dependencies of the scheduler.
// This enables dependency injection for testing.
type Dependencies struct {
	// Logger receives the loop's log lines. Defaults to a nop logger.
	Logger logger.Logger

	// Spawn launches job processes. Defaults to DefaultSpawn.
	Spawn SpawnFunc

	// History records spawned processes. If nil, no ledger is kept.
	History SpawnRecorder

	// Status receives queue snapshots for RPC reporting. May be nil.
	Status *StatusHolder

	// Now and Sleep are the loop's clock. They default to the real
	// clock and a context-aware sleep.
	Now   func() time.Time
	Sleep func(ctx context.Context, d time.Duration) error
}

// Scheduler owns the event queue and drives the wake, execute and
// requeue cycle. It is single-threaded by design: nothing else touches
// the queue once Run starts.
type Scheduler struct {
	config *Config
	deps   *Dependencies
	queue  *cronlib.EventQueue
}

// New creates a scheduler with an empty queue.
// Nil config or deps fields fall back to defaults.
func New(config *Config, deps *Dependencies) *Scheduler {
	return &Scheduler{
		config: applyConfigDefaults(config),
		deps:   applyDependencyDefaults(deps),
		queue:  cronlib.NewEventQueue(),
	}
}

// applyConfigDefaults returns a Config with default values applied for
// zero fields.
func applyConfigDefaults(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}
	if config.AdvanceGuard <= 0 {
		config.AdvanceGuard = DefaultAdvanceGuard
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = DefaultRetryDelay
	}
	return config
}

// applyDependencyDefaults returns Dependencies with default values
// applied.
func applyDependencyDefaults(deps *Dependencies) *Dependencies {
	if deps == nil {
		deps = &Dependencies{}
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNopLogger()
	}
	if deps.Spawn == nil {
		deps.Spawn = DefaultSpawn
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Sleep == nil {
		deps.Sleep = sleepContext
	}
	return deps
}

// sleepContext pauses for d or until ctx is canceled, whichever comes
// first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Populate compiles descriptors into jobs and enqueues each at its
// first occurrence. A descriptor that fails to compile is logged and
// skipped so one bad entry never takes the daemon down. Returns the
// number of jobs enqueued.
func (s *Scheduler) Populate(descriptors []jobfile.Descriptor) int {
	now := s.deps.Now()
	added := 0
	for _, d := range descriptors {
		job, err := cronlib.NewJob(d.Name, d.Command, d.Schedule, now)
		if err != nil {
			s.deps.Logger.Warning("[%s] Skipping job: %v", d.Name, err)
			continue
		}
		s.deps.Logger.Debug("New job: [%s] next occurrence %s", job.Name, job.NextFire.Format(time.RFC3339))
		s.queue.Enqueue(job)
		added++
	}
	return added
}

// Run drives the scheduling loop until the queue drains or ctx is
// canceled. It returns nil once no jobs remain and ctx.Err() on
// cancellation.
//
// Each cycle pops the earliest event, sleeps until its instant, spawns
// one process per contained job, then advances and requeues every job
// that still has occurrences left. An event the clock has already
// passed is not lost: its jobs are pushed RetryDelay into the future
// and the loop backs off before retrying.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		s.publishStatus()
		s.deps.Logger.Debug("Queue: %s", s.queue)

		ev, ok := s.queue.Dequeue()
		if !ok {
			s.deps.Logger.Info("There are no jobs to execute")
			return nil
		}

		now := s.deps.Now()
		wait := ev.FireTime.Sub(now)
		if wait < 0 {
			s.deps.Logger.Error("Failed to calculate time difference, retrying in %s", s.config.RetryDelay)
			s.requeueLate(ev, now.Add(s.config.RetryDelay))
			if err := s.deps.Sleep(ctx, s.config.RetryDelay); err != nil {
				return err
			}
			continue
		}

		s.deps.Logger.Info("Next execution after %s", wait)
		if err := s.deps.Sleep(ctx, wait); err != nil {
			return err
		}
		s.fire(ev)
	}
}

// fire spawns every job of a due event in queue order, then advances
// and requeues each one. A spawn failure affects only that occurrence;
// the job still advances to its next one.
func (s *Scheduler) fire(ev cronlib.Event) {
	for _, job := range ev.Jobs {
		s.launch(job)
		s.advance(job, s.deps.Now().Add(s.config.AdvanceGuard))
	}
}

// launch starts one process for the job and records it in the ledger.
func (s *Scheduler) launch(job cronlib.Job) {
	pid, err := s.deps.Spawn(job)
	if err != nil {
		s.deps.Logger.Error("[%s] Failed to spawn child: %v", job.Name, err)
		return
	}
	s.deps.Logger.Info("[%s] Spawned child %d", job.Name, pid)
	s.recordSpawn(job, pid)
}

func (s *Scheduler) recordSpawn(job cronlib.Job, pid int) {
	if s.deps.History == nil {
		return
	}
	err := s.deps.History.RecordSpawn(context.Background(), job.Name, pid, job.NextFire, s.deps.Now())
	if err != nil {
		s.deps.Logger.Warning("[%s] Failed to record spawn: %v", job.Name, err)
	}
}

// advance requeues the job at its next occurrence after reference, or
// drops it once the schedule is exhausted.
func (s *Scheduler) advance(job cronlib.Job, reference time.Time) {
	adv, err := job.Advance(reference)
	if err != nil {
		s.deps.Logger.Info("Job schedule finished: %s", job.Name)
		return
	}
	s.deps.Logger.Debug("New job: [%s] next occurrence %s", adv.Name, adv.NextFire.Format(time.RFC3339))
	s.queue.Enqueue(adv)
}

// requeueLate re-keys every job of an event to a fresh fire time and
// enqueues them again. PrevFire is left untouched so the deferral does
// not masquerade as a completed occurrence.
func (s *Scheduler) requeueLate(ev cronlib.Event, at time.Time) {
	for _, job := range ev.Jobs {
		job.NextFire = at
		s.queue.Enqueue(job)
	}
}

func (s *Scheduler) publishStatus() {
	if s.deps.Status != nil {
		s.deps.Status.Publish(s.queue.Snapshot())
	}
}
