package cmd

import (
	"context"
	"os"
	"time"

	"github.com/xcrond/xcrond/internal/cron"
	"github.com/xcrond/xcrond/internal/history"
	"github.com/xcrond/xcrond/internal/server"
	"github.com/xcrond/xcrond/pkg/logger"
	"github.com/xcrond/xcrond/pkg/paths"
)

// componentShutdownTimeout bounds how long Close waits for in-flight
// RPC requests to drain.
const componentShutdownTimeout = 2 * time.Second

// DaemonComponents holds all initialized daemon components.
// This allows for unified initialization and cleanup.
type DaemonComponents struct {
	Store     *history.Store
	Status    *cron.StatusHolder
	Scheduler *cron.Scheduler
	Reaper    *cron.Reaper
	Server    *server.Server
	logger    logger.Logger
}

// Close releases all daemon component resources in reverse order of
// initialization.
func (c *DaemonComponents) Close() {
	if c.logger != nil {
		c.logger.Info("Shutting down daemon...")
	}

	if c.Server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), componentShutdownTimeout)
		if err := c.Server.Shutdown(ctx); err != nil && c.logger != nil {
			c.logger.Warning("RPC shutdown: %v", err)
		}
		cancel()
	}

	if c.Store != nil {
		if err := c.Store.Close(); err != nil && c.logger != nil {
			c.logger.Warning("History close: %v", err)
		}
	}

	if c.logger != nil {
		c.logger.Info("Daemon stopped")
	}
}

// initDaemonComponents initializes all daemon components with the
// provided logger. Returns the initialized components or an error if
// initialization fails.
//
// On error, any partially initialized components are cleaned up before
// returning.
var initDaemonComponents = func(log logger.Logger, noHistory bool) (*DaemonComponents, error) {
	var store *history.Store
	if noHistory {
		log.Info("Run history disabled")
	} else {
		s, err := history.Open(paths.HistoryDB())
		if err != nil {
			// The ledger is an aid, not a prerequisite: scheduling
			// continues without it.
			log.Warning("Run history unavailable: %v", err)
		} else {
			store = s
		}
	}

	statusHolder := cron.NewStatusHolder(os.Getpid(), time.Now())

	rpc := server.NewRPCServer(&server.RPCConfig{
		Version:   currentBuildArgs.Version,
		Commit:    currentBuildArgs.Commit,
		BuildType: currentBuildArgs.BuildType,
	}, statusHolder, store)

	srv := server.NewServer(log, rpc, paths.Socket())
	if err := srv.Start(); err != nil {
		log.Error("RPC server start failed: %v", err)
		rpc.Close()
		if store != nil {
			_ = store.Close()
		}
		return nil, err
	}

	schedDeps := &cron.Dependencies{
		Logger: log,
		Status: statusHolder,
	}
	reaperCfg := &cron.ReaperConfig{
		Logger: log,
	}
	// A nil *Store inside a non-nil interface would defeat the nil
	// checks downstream, so the store is only bound when it exists.
	if store != nil {
		schedDeps.History = store
		reaperCfg.History = store
	}

	return &DaemonComponents{
		Store:     store,
		Status:    statusHolder,
		Scheduler: cron.New(nil, schedDeps),
		Reaper:    cron.NewReaper(reaperCfg),
		Server:    srv,
		logger:    log,
	}, nil
}
