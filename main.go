package main

import (
	"os"

	"github.com/Parthiban024/jira-automation/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
