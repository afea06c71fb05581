package cronlib

import (
	"errors"
	"testing"
	"time"
)

func TestNewJob_SplitsCommandLine(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	job, err := NewJob("marker", "/usr/bin/touch /tmp/marker", "* * * * *", now)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	if job.Path != "/usr/bin/touch" {
		t.Errorf("expected path /usr/bin/touch, got %q", job.Path)
	}
	if len(job.Args) != 2 {
		t.Fatalf("expected 2 args, got %d: %v", len(job.Args), job.Args)
	}
	// Args[0] is the executable itself, exec argv convention.
	if job.Args[0] != "/usr/bin/touch" || job.Args[1] != "/tmp/marker" {
		t.Errorf("unexpected argv: %v", job.Args)
	}
}

func TestNewJob_CollapsesRepeatedSpaces(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	job, err := NewJob("spaced", "/bin/echo   hello   world", "* * * * *", now)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	if len(job.Args) != 3 {
		t.Errorf("expected 3 args, got %v", job.Args)
	}
}

func TestNewJob_FirstOccurrenceAfterNow(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 30, 0, time.UTC)
	job, err := NewJob("j", "/bin/true", "* * * * *", now)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	if !job.NextFire.After(now) {
		t.Errorf("expected NextFire after %v, got %v", now, job.NextFire)
	}
	if !job.PrevFire.IsZero() {
		t.Errorf("expected zero PrevFire on a fresh job, got %v", job.PrevFire)
	}
}

func TestNewJob_EmptyCommand(t *testing.T) {
	_, err := NewJob("empty", "   ", "* * * * *", time.Now())
	if err == nil {
		t.Fatal("expected error for empty command")
	}
	if !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("expected ErrEmptyCommand, got %v", err)
	}
}

func TestNewJob_InvalidExpression(t *testing.T) {
	_, err := NewJob("bad", "/bin/true", "not-a-cron", time.Now())
	if err == nil {
		t.Fatal("expected error for invalid expression")
	}
	if !errors.Is(err, ErrInvalidExpression) {
		t.Errorf("expected ErrInvalidExpression, got %v", err)
	}
}

func TestNewJob_ExhaustedSchedule(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := NewJob("past", "/bin/true", "0 0 0 1 1 * 2020", now)
	if err == nil {
		t.Fatal("expected error for exhausted schedule")
	}
	if !errors.Is(err, ErrScheduleExhausted) {
		t.Errorf("expected ErrScheduleExhausted, got %v", err)
	}
}

func TestJob_Advance(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	job, err := NewJob("j", "/bin/true", "0 */2 * * * *", now)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}

	adv, err := job.Advance(job.NextFire)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if !adv.PrevFire.Equal(job.NextFire) {
		t.Errorf("expected PrevFire %v, got %v", job.NextFire, adv.PrevFire)
	}
	if !adv.NextFire.After(job.NextFire) {
		t.Errorf("expected NextFire after %v, got %v", job.NextFire, adv.NextFire)
	}

	// The original job value stays untouched.
	if !job.PrevFire.IsZero() {
		t.Errorf("Advance mutated the original job: PrevFire %v", job.PrevFire)
	}
}

func TestJob_Advance_NeverAtOrBeforeReference(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	job, err := NewJob("j", "/bin/true", "* * * * *", now)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}

	ref := job.NextFire
	for i := 0; i < 5; i++ {
		adv, err := job.Advance(ref)
		if err != nil {
			t.Fatalf("Advance #%d: %v", i, err)
		}
		if !adv.NextFire.After(ref) {
			t.Fatalf("Advance #%d: NextFire %v not after reference %v", i, adv.NextFire, ref)
		}
		job = adv
		ref = adv.NextFire
	}
}

func TestJob_Advance_PeriodConsistency(t *testing.T) {
	// Every 2 minutes at second 0; consecutive occurrences are 120s apart.
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	job, err := NewJob("j", "/bin/true", "0 */2 * * * *", now)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}

	prev := job.NextFire
	for i := 0; i < 4; i++ {
		adv, err := job.Advance(prev)
		if err != nil {
			t.Fatalf("Advance #%d: %v", i, err)
		}
		if got := adv.NextFire.Sub(prev); got != 2*time.Minute {
			t.Errorf("Advance #%d: expected 2m interval, got %v", i, got)
		}
		prev = adv.NextFire
	}
}

func TestJob_Advance_Exhausted(t *testing.T) {
	// Created before the bounded year runs out, advanced past it.
	now := time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC)
	job, err := NewJob("once", "/bin/true", "0 0 0 1 1 * 2020", now)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}

	_, err = job.Advance(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected error for exhausted schedule")
	}
	if !errors.Is(err, ErrScheduleExhausted) {
		t.Errorf("expected ErrScheduleExhausted, got %v", err)
	}
}
