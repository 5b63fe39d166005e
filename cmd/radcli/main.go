package main

import (
	"fmt"
	"os"

	"github.com/radwatch/radclient/cmd/radcli/cmd"
)

// Version info set via ldflags at build time
var (
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

func main() {
	if err := cmd.Execute(version, gitCommit, buildTime); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
