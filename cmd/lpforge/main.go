// Package main provides the lpforge CLI entrypoint.
package main

import (
	"os"

	"github.com/lpforge/lpforge/internal/cli"
	"github.com/lpforge/lpforge/internal/ingest"
)

// Exit codes distinguish rejected input from solve-side failures so
// callers can tell a bad problem file apart from a solver error.
const (
	exitFailure  = 1
	exitBadInput = 2
)

func main() {
	if err := cli.Execute(); err != nil {
		if ingest.IsIngestError(err) {
			os.Exit(exitBadInput)
		}
		os.Exit(exitFailure)
	}
}
