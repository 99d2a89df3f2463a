// Command pdfwords extracts the unique words of every PDF in a set of
// category folders into a CSV, XLSX or SQLite table.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/custodia-labs/pdfwords/internal/adapters/driving/cli"
	"github.com/custodia-labs/pdfwords/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version string

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Ignoring .env: %v", err)
	}

	// pdfcpu would otherwise create a config directory in the user's home.
	api.DisableConfigDir()

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Config:      newConfigService,
		Extraction:  newExtractionService,
		Diagnostics: newDiagnosticsService,
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
