// Package main provides the entry point for the uptime CLI application.
package main

import (
	"os"

	"github.com/greyshaman/system-uptime/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
