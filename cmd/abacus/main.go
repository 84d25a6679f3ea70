// Package main is the entry point for the Abacus ledger server.
package main

import (
	"os"

	"github.com/linoMlv/abacus/pkg/logging"
)

func main() {
	logging.Setup()

	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
