package main

import (
	"os"

	"gitramble.dev/gitramble/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := cli.Execute(rootCmd); err != nil {
		os.Exit(1)
	}
}
