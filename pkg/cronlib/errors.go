package cronlib

import "errors"

var (
	// ErrInvalidExpression indicates a malformed cron expression.
	ErrInvalidExpression = errors.New("invalid cron expression")

	// ErrScheduleExhausted indicates a schedule with no occurrence after
	// the reference instant (possible with year-bounded expressions).
	ErrScheduleExhausted = errors.New("schedule has no future occurrence")

	// ErrEmptyCommand indicates a job descriptor with no command to run.
	ErrEmptyCommand = errors.New("job command is empty")
)
