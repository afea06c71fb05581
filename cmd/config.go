package cmd

import "time"

const (
	// DEF_STOP_TIMEOUT is how long `xcrond stop` waits for a graceful
	// exit before escalating.
	DEF_STOP_TIMEOUT = 5 * time.Second

	// DEF_START_TIMEOUT is how long `xcrond start` waits for the
	// daemon's control socket to come up.
	DEF_START_TIMEOUT = 3 * time.Second

	// DEF_HISTORY_LIMIT is the default number of run ledger rows shown.
	DEF_HISTORY_LIMIT = 20

	// DEF_CHECK_COUNT is the default number of occurrences printed by
	// the check command.
	DEF_CHECK_COUNT = 3
)

const DESCRIPTION = `
xcrond is a small cron-style job scheduling daemon. It reads a YAML
jobfile, queues every job by its next occurrence and wakes exactly
when the earliest one is due. Spawned processes run detached and are
collected by a built-in zombie reaper; every run is recorded in a
local history ledger.
`

const (
	DaemonDescription = `The daemon command runs the scheduler in the foreground.
It loads the jobfile, queues each job at its next occurrence
and then sleeps until the earliest event is due. A JSON-RPC
control endpoint is served on a local socket for the status
and history commands.

Example:
        xcrond daemon
        xcrond daemon --log-level debug
        xcrond daemon --jobfile /etc/xcrond/jobs.yaml

`
	StartDescription = `The start command launches the daemon as a detached
background process and waits for its control socket to
come up.

Example:
        xcrond start

`
	StopDescription = `The stop command asks a running daemon to exit. It sends
a terminate signal first and escalates to a force kill if
the daemon does not exit within the timeout.

Example:
        xcrond stop

`
	StatusDescription = `The status command reports whether the daemon is running
and, if so, its pid, uptime and the pending events in the
queue with the jobs each will fire.

Example:
        xcrond status

`
	ListDescription = `The list command parses the jobfile and prints every job
with its schedule and next occurrence, without talking to
the daemon.

Example:
        xcrond list

`
	CheckDescription = `The check command validates a cron expression and prints
its next occurrences. Quote the expression so the shell
passes it through as one argument.

Example:
        xcrond check "0 */5 * * * *"
        xcrond check -n 10 "@daily"

`
	HistoryDescription = `The history command shows the most recent job runs from
the run ledger: the spawned pid, when it fired and how the
process ended. It asks a running daemon first and falls
back to reading the ledger directly.

Example:
        xcrond history
        xcrond history -n 50

`
	InitDescription = `The init command writes a starter jobfile with example
jobs into the configuration directory.

Example:
        xcrond init

`
)
