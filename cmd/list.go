package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/xcrond/xcrond/cmd/common"
	"github.com/xcrond/xcrond/pkg/cronlib"
	"github.com/xcrond/xcrond/pkg/jobfile"
)

var lsFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "jobfile, j",
		Usage:       "path of the jobfile to read (default: config directory)",
		EnvVar:      "XCROND_JOBFILE",
		Destination: &jobfileOverride,
	},
}

func list(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	path := jobfilePath()
	descriptors, err := jobfile.Load(afero.NewOsFs(), path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("xcrond: no jobfile at %s (run 'xcrond init' to create one)\n", path)
			return nil
		}
		common.PrintRuntimeErr(ctx, "list", "load_jobfile", err)
		return nil
	}
	if len(descriptors) == 0 {
		fmt.Println("xcrond: no jobs found")
		return nil
	}
	now := time.Now()
	txt := fmt.Sprintf("Jobs in %s:", path)
	txt += "\n\n-------------------------------------------------------------------------"
	txt += "\n|Num|         Name          |      Schedule       |      Next Run       |"
	txt += "\n|---|-----------------------|---------------------|---------------------|"
	for i, d := range descriptors {
		name := d.Name
		n := len(name)
		switch {
		case n > 23:
			name = name[:20] + "..."
		case n < 23:
			name = common.Beaut(name, 23)
		}
		expr := d.Schedule
		if len(expr) > 21 {
			expr = expr[:18] + "..."
		} else {
			expr = common.Beaut(expr, 21)
		}
		txt += fmt.Sprintf("\n| %d | %s | %s | %s |", i+1, name, expr, common.Beaut(nextRunLabel(d.Schedule, now), 21))
	}
	txt += "\n-------------------------------------------------------------------------"
	fmt.Println(txt)
	return nil
}

// nextRunLabel renders the first occurrence of expr after now, or a
// short marker when the expression is broken or has no future runs.
func nextRunLabel(expr string, now time.Time) string {
	sched, err := cronlib.Parse(expr)
	if err != nil {
		return "invalid"
	}
	next, err := sched.Next(now)
	if err != nil {
		return "expired"
	}
	return next.Format("2006-01-02 15:04:05")
}
