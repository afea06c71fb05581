package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/xcrond/xcrond/cmd/common"
	"github.com/xcrond/xcrond/pkg/jobfile"
)

var (
	forceInit bool

	inFlags = []cli.Flag{
		cli.BoolFlag{
			Name:        "force, f",
			Usage:       "overwrite an existing jobfile",
			Destination: &forceInit,
		},
		cli.StringFlag{
			Name:        "jobfile, j",
			Usage:       "path of the jobfile to create (default: config directory)",
			EnvVar:      "XCROND_JOBFILE",
			Destination: &jobfileOverride,
		},
	}
)

func initJobfile(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	path := jobfilePath()
	fs := afero.NewOsFs()
	if forceInit {
		if err := fs.Remove(path); err != nil && !os.IsNotExist(err) {
			common.PrintRuntimeErr(ctx, "init", "remove_jobfile", err)
			return nil
		}
	}
	if err := jobfile.WriteTemplate(fs, path); err != nil {
		if errors.Is(err, jobfile.ErrJobfileExists) {
			fmt.Printf("xcrond: jobfile already exists at %s (use --force to overwrite)\n", path)
			return nil
		}
		common.PrintRuntimeErr(ctx, "init", "write_template", err)
		return nil
	}
	fmt.Printf("Created starter jobfile at %s\n", path)
	fmt.Println("Edit it to taste, then run 'xcrond start'.")
	return nil
}
