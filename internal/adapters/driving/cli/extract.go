package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pdfwords/internal/adapters/driving/tui"
	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/logger"
)

var (
	extractOutput        string
	extractFormat        string
	extractCategories    []string
	extractLanguages     []string
	extractDPI           int
	extractIgnoreCaseExt bool
	extractFailFast      bool
	extractStrict        bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [root]",
	Short: "Extract unique words from every PDF under root",
	Long: `Scans each category folder under root (default "pdf_files") for .pdf files.
Documents with a text layer are read directly; scanned documents are
rasterised with pdftoppm and recognised with Tesseract. The unique words of
each document are written as one row of the output table.

A document that cannot be read is reported and skipped. Use --fail-fast to
stop at the first such document, or --strict to exit with an error after the
output has been written.

The output format follows the --output extension (.csv, .xlsx, .db) unless
--format is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.StringVarP(&extractOutput, "output", "o", "", "output file (default extracted_words.csv)")
	f.StringVar(&extractFormat, "format", "", "output format: csv, xlsx or sqlite (default from output extension)")
	f.StringSliceVarP(&extractCategories, "category", "c", nil, "category folder to scan (repeatable)")
	f.StringSliceVar(&extractLanguages, "lang", nil, "OCR languages (e.g. eng,deu)")
	f.IntVar(&extractDPI, "dpi", domain.DefaultDPI, "rasterisation resolution for OCR")
	f.BoolVar(&extractIgnoreCaseExt, "ignore-case-ext", false, "also match .PDF and other extension cases")
	f.BoolVar(&extractFailFast, "fail-fast", false, "abort on the first document that fails")
	f.BoolVar(&extractStrict, "strict", false, "exit with an error when any document failed")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	applyExtractFlags(cmd, args, &settings)
	if err := settings.Validate(); err != nil {
		return err
	}

	svc, err := extractionService(settings)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	var report *domain.RunReport
	if isTerminal(cmd) && !logger.IsVerbose() {
		report, err = tui.Run(ctx, cmd.OutOrStdout(), svc.Run)
	} else {
		report, err = svc.Run(ctx, nil)
	}
	if err != nil {
		if report != nil && len(report.Results) > 0 {
			printSummary(cmd, report)
		}
		return fmt.Errorf("extraction failed: %w", err)
	}

	cmd.Printf("Extraction complete! Saved results to %s\n", report.OutputPath)
	printSummary(cmd, report)

	if settings.Strict && report.Failed() > 0 {
		errs := make([]error, 0, report.Failed())
		for _, f := range report.Failures() {
			errs = append(errs, f)
		}
		return fmt.Errorf("%d of %d documents failed: %w", report.Failed(), len(report.Results), errors.Join(errs...))
	}
	return nil
}

// applyExtractFlags overlays the flags the user set on the resolved settings.
func applyExtractFlags(cmd *cobra.Command, args []string, s *domain.Settings) {
	flags := cmd.Flags()

	if len(args) > 0 {
		s.Input.Root = args[0]
	}
	if flags.Changed("category") {
		s.Input.Categories = append([]string(nil), extractCategories...)
	}
	if flags.Changed("ignore-case-ext") {
		s.Input.IgnoreCaseExt = extractIgnoreCaseExt
	}
	if flags.Changed("output") {
		s.Output.Path = extractOutput
		if !flags.Changed("format") {
			s.Output.Format = domain.FormatFromPath(extractOutput)
		}
	}
	if flags.Changed("format") {
		s.Output.Format = domain.OutputFormat(extractFormat)
	}
	if flags.Changed("lang") {
		s.OCR.Languages = append([]string(nil), extractLanguages...)
	}
	if flags.Changed("dpi") {
		s.OCR.DPI = extractDPI
	}
	if flags.Changed("fail-fast") {
		s.FailFast = extractFailFast
	}
	if flags.Changed("strict") {
		s.Strict = extractStrict
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
