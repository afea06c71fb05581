package cronlib

import (
	"fmt"
	"time"

	"github.com/adhocore/gronx"
)

// Schedule is a validated cron recurrence rule. The zero value is not
// usable; obtain one through Parse. Schedule is an immutable value type,
// safe to copy between job clones.
type Schedule struct {
	expr string
}

// Parse validates a cron expression and compiles it into a Schedule.
// Standard 5-field expressions, seconds-first 6-field and year-bounded
// 7-field expressions, and @aliases (@always, @hourly, @daily, ...) are
// all accepted. Returns ErrInvalidExpression for malformed input.
func Parse(expr string) (Schedule, error) {
	if expr == "" || !gronx.IsValid(expr) {
		return Schedule{}, fmt.Errorf("%w: %q", ErrInvalidExpression, expr)
	}
	return Schedule{expr: expr}, nil
}

// Expression returns the cron expression this schedule was parsed from.
func (s Schedule) Expression() string {
	return s.expr
}

// Next returns the first occurrence strictly after the reference instant.
// The computation is restartable: any reference may be passed, independent
// of previous calls. Returns ErrScheduleExhausted when no occurrence
// exists after the reference (e.g., a year-bounded expression whose last
// occurrence has passed).
func (s Schedule) Next(after time.Time) (time.Time, error) {
	next, err := gronx.NextTickAfter(s.expr, after, false)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q after %s", ErrScheduleExhausted, s.expr, after.Format(time.RFC3339))
	}
	return next, nil
}
