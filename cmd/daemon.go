package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"github.com/xcrond/xcrond/cmd/common"
	"github.com/xcrond/xcrond/pkg/jobfile"
	"github.com/xcrond/xcrond/pkg/logger"
	"github.com/xcrond/xcrond/pkg/paths"
)

var (
	jobfileOverride string
	logLevel        string
	noHistory       bool

	dmnFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "jobfile, j",
			Usage:       "load jobs from `PATH` instead of the config directory",
			EnvVar:      "XCROND_JOBFILE",
			Destination: &jobfileOverride,
		},
		cli.StringFlag{
			Name:        "log-level",
			Usage:       "minimum log level: debug, info, warning or error",
			Value:       "info",
			Destination: &logLevel,
		},
		cli.BoolFlag{
			Name:        "no-history",
			Usage:       "disable the run history ledger",
			Destination: &noHistory,
		},
	}
)

// jobfilePath resolves the jobfile location, honoring the --jobfile
// override.
func jobfilePath() string {
	if jobfileOverride != "" {
		return jobfileOverride
	}
	return paths.Jobfile()
}

// daemon runs the scheduler in the foreground until the job queue
// drains or a terminate signal arrives.
func daemon(ctx *cli.Context) error {
	log := logger.NewZerologLogger(os.Stderr, logLevel)
	defer log.Close()

	if err := CleanupStalePidFile(); err != nil {
		if errors.Is(err, ErrDaemonAlreadyRunning) {
			fmt.Println("xcrond daemon is already running")
			return nil
		}
		common.PrintRuntimeErr(ctx, "daemon", "pidfile", err)
		return nil
	}
	if err := WritePidFile(); err != nil {
		common.PrintRuntimeErr(ctx, "daemon", "write_pidfile", err)
		return nil
	}
	defer func() { _ = RemovePidFile() }()

	descriptors, err := jobfile.Load(afero.NewOsFs(), jobfilePath())
	if err != nil {
		if os.IsNotExist(err) {
			log.Error("No jobfile at %s, run 'xcrond init' to create one", jobfilePath())
			return nil
		}
		log.Error("Failed to load jobfile: %v", err)
		return nil
	}

	comps, err := initDaemonComponents(log, noHistory)
	if err != nil {
		common.PrintRuntimeErr(ctx, "daemon", "init_components", err)
		return nil
	}
	defer comps.Close()

	if n := comps.Scheduler.Populate(descriptors); n == 0 {
		log.Warning("No runnable jobs in %s", jobfilePath())
	} else {
		log.Info("Scheduling %d job(s) from %s", n, jobfilePath())
	}

	runCtx, cancel := setupShutdownHandler(log)
	defer cancel()

	go comps.Reaper.Run(runCtx)

	notifyReady(log)
	defer notifyStopping(log)

	if err := comps.Scheduler.Run(runCtx); err != nil {
		// Canceled by the shutdown handler; the notice is already out.
		return nil
	}
	return nil
}
