// main is the entry point for the healthreport CLI.
package main

import (
	"fmt"
	"os"

	"github.com/ElleNealAI/code-health-report/cmd"
)

func main() {
	err := cmd.Execute()
	cmd.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
