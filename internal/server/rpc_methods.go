package server

import (
	"context"
	"errors"
	"time"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/creachadair/jrpc2/jhttp"

	"github.com/xcrond/xcrond/internal/cron"
	"github.com/xcrond/xcrond/internal/history"
)

// Custom JSON-RPC error codes.
const (
	codeInvalidParams   = jrpc2.Code(-32602)
	codeHistoryDisabled = jrpc2.Code(-32010)
)

// Default and maximum row counts for history.recent.
const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 500
)

// RPCConfig holds configuration for the JSON-RPC endpoint.
type RPCConfig struct {
	Version   string // Daemon version
	Commit    string // Git commit
	BuildType string // Build type
}

// RPCServer manages the JSON-RPC 2.0 bridge and method handlers.
type RPCServer struct {
	bridge    jhttp.Bridge
	version   string
	commit    string
	buildType string
	status    *cron.StatusHolder
	store     *history.Store
}

// VersionResult is the response for system.getVersion.
type VersionResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildType string `json:"buildType,omitempty"`
}

// EventStatus is one pending event in the daemon.status response.
type EventStatus struct {
	FireTime string   `json:"fireTime"`
	Jobs     []string `json:"jobs"`
}

// StatusResult is the response for daemon.status.
type StatusResult struct {
	PID       int           `json:"pid"`
	StartedAt string        `json:"startedAt"`
	Uptime    string        `json:"uptime"`
	Pending   []EventStatus `json:"pending"`
}

// RecentParams is the input for history.recent.
type RecentParams struct {
	Limit int `json:"limit,omitempty"`
}

// RunStatus is a single entry in the history.recent response.
type RunStatus struct {
	JobName   string `json:"jobName"`
	PID       int    `json:"pid"`
	FireTime  string `json:"fireTime"`
	SpawnedAt string `json:"spawnedAt"`
	ReapedAt  string `json:"reapedAt,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
	Detail    int    `json:"detail,omitempty"`
}

// RecentResult is the response for history.recent.
type RecentResult struct {
	Runs []RunStatus `json:"runs"`
}

// NewRPCServer creates a new RPCServer with method handlers and HTTP
// bridge. status supplies daemon.status; store may be nil when run
// history is disabled.
func NewRPCServer(cfg *RPCConfig, status *cron.StatusHolder, store *history.Store) *RPCServer {
	rs := &RPCServer{
		version:   cfg.Version,
		commit:    cfg.Commit,
		buildType: cfg.BuildType,
		status:    status,
		store:     store,
	}

	methods := handler.Map{
		"system.getVersion": handler.New(rs.systemGetVersion),
		"daemon.status":     handler.New(rs.daemonStatus),
		"history.recent":    handler.New(rs.historyRecent),
	}

	rs.bridge = jhttp.NewBridge(methods, nil)
	return rs
}

func (rs *RPCServer) systemGetVersion(_ context.Context) (*VersionResult, error) {
	return &VersionResult{
		Version:   rs.version,
		Commit:    rs.commit,
		BuildType: rs.buildType,
	}, nil
}

// daemonStatus reports the scheduler's latest queue snapshot.
func (rs *RPCServer) daemonStatus(_ context.Context) (*StatusResult, error) {
	st := rs.status.Get()
	pending := make([]EventStatus, 0, len(st.Events))
	for _, ev := range st.Events {
		pending = append(pending, EventStatus{
			FireTime: ev.FireTime.Format(time.RFC3339),
			Jobs:     ev.Jobs,
		})
	}
	return &StatusResult{
		PID:       st.PID,
		StartedAt: st.StartedAt.Format(time.RFC3339),
		Uptime:    time.Since(st.StartedAt).Round(time.Second).String(),
		Pending:   pending,
	}, nil
}

// historyRecent returns the newest run ledger rows, newest first.
func (rs *RPCServer) historyRecent(ctx context.Context, p *RecentParams) (*RecentResult, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	runs, err := rs.store.Recent(ctx, limit)
	if err != nil {
		if errors.Is(err, history.ErrDisabled) {
			return nil, &jrpc2.Error{Code: codeHistoryDisabled, Message: "run history is disabled"}
		}
		return nil, &jrpc2.Error{Code: codeInvalidParams, Message: err.Error()}
	}

	out := make([]RunStatus, 0, len(runs))
	for _, r := range runs {
		row := RunStatus{
			JobName:   r.JobName,
			PID:       r.Pid,
			FireTime:  r.FireTime.Format(time.RFC3339),
			SpawnedAt: r.SpawnedAt.Format(time.RFC3339),
			Outcome:   r.Outcome,
			Detail:    r.Detail,
		}
		if !r.ReapedAt.IsZero() {
			row.ReapedAt = r.ReapedAt.Format(time.RFC3339)
		}
		out = append(out, row)
	}
	return &RecentResult{Runs: out}, nil
}

// Close shuts down the jrpc2 bridge, releasing internal goroutines.
func (rs *RPCServer) Close() {
	rs.bridge.Close()
}
