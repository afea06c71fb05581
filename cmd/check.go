package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/xcrond/xcrond/cmd/common"
	"github.com/xcrond/xcrond/pkg/cronlib"
)

var (
	checkCount int

	ckFlags = []cli.Flag{
		cli.IntFlag{
			Name:        "count, n",
			Usage:       "number of upcoming occurrences to print",
			Value:       DEF_CHECK_COUNT,
			Destination: &checkCount,
		},
	}
)

func check(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	// Joining the args lets the expression be passed unquoted.
	expr := strings.TrimSpace(strings.Join(ctx.Args(), " "))
	if expr == "" {
		return common.PrintErrWithCmdHelp(
			ctx,
			errors.New("no cron expression provided"),
		)
	}
	sched, err := cronlib.Parse(expr)
	if err != nil {
		fmt.Printf("xcrond: %v\n", err)
		return nil
	}
	fmt.Printf("Expression %q is valid.\n", expr)

	count := checkCount
	if count <= 0 {
		count = DEF_CHECK_COUNT
	}
	fmt.Printf("\nNext %d occurrence(s):\n", count)
	ref := time.Now()
	for i := 1; i <= count; i++ {
		next, err := sched.Next(ref)
		if err != nil {
			fmt.Println("  (no further occurrences)")
			break
		}
		fmt.Printf("  %d. %s\n", i, next.Format("2006-01-02 15:04:05 MST"))
		ref = next
	}
	return nil
}
