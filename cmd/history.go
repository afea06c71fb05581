package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/xcrond/xcrond/cmd/common"
	"github.com/xcrond/xcrond/internal/history"
	"github.com/xcrond/xcrond/internal/server"
	"github.com/xcrond/xcrond/pkg/paths"
)

var (
	historyLimit int

	hsFlags = []cli.Flag{
		cli.IntFlag{
			Name:        "limit, n",
			Usage:       "maximum number of runs to show",
			Value:       DEF_HISTORY_LIMIT,
			Destination: &historyLimit,
		},
	}
)

type historyRow struct {
	job     string
	pid     int
	fired   string
	outcome string
}

func showHistory(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	limit := historyLimit
	if limit <= 0 {
		limit = DEF_HISTORY_LIMIT
	}

	var rows []historyRow
	if pingDaemon() {
		client := newRPCClient()
		var res server.RecentResult
		if err := client.call("history.recent", server.RecentParams{Limit: limit}, &res); err != nil {
			common.PrintRuntimeErr(ctx, "history", "recent", err)
			return nil
		}
		for _, r := range res.Runs {
			rows = append(rows, historyRow{
				job:     r.JobName,
				pid:     r.PID,
				fired:   reformatStamp(r.FireTime),
				outcome: outcomeLabel(r.Outcome, r.Detail),
			})
		}
	} else {
		// No daemon around, read the ledger directly.
		store, err := history.Open(paths.HistoryDB())
		if err != nil {
			common.PrintRuntimeErr(ctx, "history", "open_ledger", err)
			return nil
		}
		defer store.Close()
		runs, err := store.Recent(context.Background(), limit)
		if err != nil {
			common.PrintRuntimeErr(ctx, "history", "read_ledger", err)
			return nil
		}
		for _, r := range runs {
			rows = append(rows, historyRow{
				job:     r.JobName,
				pid:     r.Pid,
				fired:   r.FireTime.Local().Format("2006-01-02 15:04:05"),
				outcome: outcomeLabel(r.Outcome, r.Detail),
			})
		}
	}

	if len(rows) == 0 {
		fmt.Println("xcrond: no recorded runs")
		return nil
	}
	txt := "Recent runs (newest first):"
	txt += "\n\n----------------------------------------------------------------------------"
	txt += "\n|Num|          Job          |   PID   |      Fired at       |   Outcome   |"
	txt += "\n|---|-----------------------|---------|---------------------|-------------|"
	for i, r := range rows {
		job := r.job
		n := len(job)
		switch {
		case n > 23:
			job = job[:20] + "..."
		case n < 23:
			job = common.Beaut(job, 23)
		}
		txt += fmt.Sprintf("\n| %d | %s | %s | %s | %s |",
			i+1,
			job,
			common.Beaut(fmt.Sprintf("%d", r.pid), 7),
			common.Beaut(r.fired, 19),
			common.Beaut(r.outcome, 11),
		)
	}
	txt += "\n----------------------------------------------------------------------------"
	fmt.Println(txt)
	return nil
}

// outcomeLabel renders a ledger outcome for display. An empty outcome
// means the reaper has not collected the process yet.
func outcomeLabel(outcome string, detail int) string {
	switch outcome {
	case history.OutcomeExited:
		return fmt.Sprintf("exit %d", detail)
	case history.OutcomeSignaled:
		return fmt.Sprintf("signal %d", detail)
	case history.OutcomeStopped:
		return "stopped"
	case "":
		return "running"
	default:
		return outcome
	}
}

func reformatStamp(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
