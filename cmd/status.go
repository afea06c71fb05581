package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/xcrond/xcrond/cmd/common"
	"github.com/xcrond/xcrond/internal/server"
)

func status(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if !pingDaemon() {
		fmt.Println("xcrond daemon is not running (use 'xcrond start' to launch it)")
		return nil
	}
	client := newRPCClient()

	var ver server.VersionResult
	if err := client.call("system.getVersion", nil, &ver); err != nil {
		common.PrintRuntimeErr(ctx, "status", "get_version", err)
		return nil
	}
	var st server.StatusResult
	if err := client.call("daemon.status", nil, &st); err != nil {
		common.PrintRuntimeErr(ctx, "status", "get_status", err)
		return nil
	}

	txt := fmt.Sprintf(`
Daemon Status
Version`+"\t\t"+`: %s
PID`+"\t\t"+`: %d
Started`+"\t\t"+`: %s
Uptime`+"\t\t"+`: %s
`,
		ver.Version,
		st.PID,
		st.StartedAt,
		st.Uptime,
	)
	fmt.Println(txt)

	if len(st.Pending) == 0 {
		fmt.Println("No pending events.")
		return nil
	}
	fmt.Printf("Pending events (%d):\n", len(st.Pending))
	for _, ev := range st.Pending {
		fmt.Printf("  %s", ev.FireTime)
		for i, name := range ev.Jobs {
			if i == 0 {
				fmt.Printf("  %s", name)
			} else {
				fmt.Printf(", %s", name)
			}
		}
		fmt.Println()
	}
	return nil
}
