package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <file.pdf>...",
	Short: "Report whether PDFs are digital or scanned",
	Long: `Prints "digital" for each PDF whose pages carry extractable text and
"scanned" for PDFs that would need OCR.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	svc, err := extractionService(settings)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	var errs []error
	for _, path := range args {
		kind, err := svc.Classify(ctx, path)
		if err != nil {
			cmd.Printf("%s\terror: %v\n", path, err)
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		cmd.Printf("%s\t%s\n", path, kind)
	}
	return errors.Join(errs...)
}
