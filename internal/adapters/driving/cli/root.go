// Package cli implements the pdfwords command line.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driving"
	"github.com/custodia-labs/pdfwords/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services holds the constructors the commands resolve their services from.
// Constructors take the resolved settings because the document root, output
// and OCR options can all be overridden per invocation.
type Services struct {
	Config      func(configDir string) (driving.ConfigService, error)
	Extraction  func(settings domain.Settings) (driving.ExtractionService, error)
	Diagnostics func(settings domain.Settings) driving.DiagnosticsService
}

var (
	services      Services
	configService driving.ConfigService
)

var rootCmd = &cobra.Command{
	Use:   "pdfwords",
	Short: "Extract unique words from folders of PDF files",
	Long: `pdfwords reads every PDF in a set of category folders, extracts its text
(directly from the text layer, or with OCR for scanned documents) and writes
the unique words of each file to a CSV or XLSX table.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress and debug output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "configuration directory (default ~/.pdfwords)")
}

// SetServices sets the service constructors used by the commands.
func SetServices(s Services) {
	services = s
	configService = nil
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if services.Config == nil {
		return nil
	}
	svc, err := services.Config(configDir)
	if err != nil {
		return err
	}
	configService = svc
	return nil
}

// loadSettings resolves the configured settings, falling back to defaults
// when no configuration service is wired.
func loadSettings() (domain.Settings, error) {
	if configService == nil {
		return domain.DefaultSettings(), nil
	}
	return configService.Settings()
}

func extractionService(settings domain.Settings) (driving.ExtractionService, error) {
	if services.Extraction == nil {
		return nil, errors.New("extraction service not configured")
	}
	return services.Extraction(settings)
}

// isTerminal reports whether the command writes to an interactive terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && isTerminalFd(int(f.Fd()))
}
