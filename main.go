package main

import (
	"fmt"
	"os"

	"github.com/xcrond/xcrond/cmd"
)

var (
	version   string
	commit    string
	date      string
	buildType string = "unclassified"
)

var osExit = os.Exit

func main() {
	osExit(runMain(os.Args, execute))
}

func execute(args []string) error {
	return cmd.Execute(args, cmd.BuildArgs{
		Version:   version,
		Commit:    commit,
		Date:      date,
		BuildType: buildType,
	})
}

func runMain(args []string, run func([]string) error) int {
	if err := run(args); err != nil {
		fmt.Printf("xcrond: %s\n", err.Error())
		return 1
	}
	return 0
}
