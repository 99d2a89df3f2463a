package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the external OCR tools are installed",
	Long: `Reports whether pdftoppm and Tesseract (with the configured languages)
are available. Only scanned documents need them.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	if services.Diagnostics == nil {
		return errors.New("diagnostics service not configured")
	}
	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	st := newStyles(isTerminal(cmd))
	var missing []string
	for _, status := range services.Diagnostics(settings).Check(commandContext(cmd)) {
		if status.Available {
			line := status.Name
			if status.Version != "" {
				line += " " + status.Version
			}
			cmd.Println(st.ok.Render("✓ " + line))
			continue
		}

		missing = append(missing, status.Name)
		cmd.Println(st.fail.Render(fmt.Sprintf("✗ %s: %s", status.Name, status.Detail)))
		if status.Install != "" {
			for _, l := range strings.Split(status.Install, "\n") {
				cmd.Println("    " + l)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrToolNotFound, strings.Join(missing, ", "))
	}
	cmd.Println("All tools available.")
	return nil
}
