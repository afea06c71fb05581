// Package cron drives the xcrond scheduling loop. It owns the event
// queue for the life of the process: pop the earliest event, sleep
// until its instant, spawn a process per contained job in order, then
// advance and requeue each job (or drop it once its schedule is
// exhausted).
//
// The package also provides the zombie reaper, an independent goroutine
// that collects any terminated child of the daemon. Scheduler and
// reaper share no in-process state; their only coupling is the OS
// process table.
package cron
