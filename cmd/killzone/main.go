// Package main is the entry point for the killzone CLI.
package main

import (
	"os"

	"KillZone/cmd/killzone/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
