package cron

import (
	"context"
	"time"

	"github.com/xcrond/xcrond/pkg/logger"
)

// DefaultIdleDelay is how long the reaper rests once no child is
// waiting to be collected.
const DefaultIdleDelay = time.Minute

// OutcomeRecorder completes a run ledger row once the reaper learns
// how a process ended. *history.Store satisfies it.
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, pid int, outcome string, detail int, reapedAt time.Time) error
}

// ReaperConfig holds the configuration for the zombie reaper.
type ReaperConfig struct {
	// Logger receives the reaper's log lines. Defaults to a nop
	// logger.
	Logger logger.Logger

	// History records process outcomes. If nil, no ledger is kept.
	History OutcomeRecorder

	// IdleDelay is the rest between collection sweeps when no child
	// is pending. Defaults to DefaultIdleDelay.
	IdleDelay time.Duration

	// Now is the clock used for ledger timestamps. Defaults to
	// time.Now.
	Now func() time.Time
}

// Reaper collects terminated children of the daemon so no zombie
// outlives its job. It shares nothing with the scheduler; the kernel
// process table is their only meeting point.
type Reaper struct {
	log     logger.Logger
	history OutcomeRecorder
	idle    time.Duration
	now     func() time.Time
}

// NewReaper creates a reaper. A nil config means all defaults.
func NewReaper(config *ReaperConfig) *Reaper {
	if config == nil {
		config = &ReaperConfig{}
	}
	r := &Reaper{
		log:     config.Logger,
		history: config.History,
		idle:    config.IdleDelay,
		now:     config.Now,
	}
	if r.log == nil {
		r.log = logger.NewNopLogger()
	}
	if r.idle <= 0 {
		r.idle = DefaultIdleDelay
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// Run blocks until ctx is canceled, collecting children as they
// terminate. Collection drains in a tight loop; once no child is
// immediately collectable the reaper rests for its idle delay.
func (r *Reaper) Run(ctx context.Context) {
	for {
		for r.reapOne() {
			if ctx.Err() != nil {
				return
			}
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(r.idle):
		}
	}
}

// persist completes the child's ledger row.
func (r *Reaper) persist(pid int, outcome string, detail int) {
	if r.history == nil {
		return
	}
	if err := r.history.RecordOutcome(context.Background(), pid, outcome, detail, r.now()); err != nil {
		r.log.Warning("[Reaper] Failed to record outcome for %d: %v", pid, err)
	}
}
