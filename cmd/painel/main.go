// Package main provides the CLI entrypoint for the salary dashboard.
package main

import (
	"os"

	"github.com/datavisbr/painel-salarios/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
