package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/pdfwords/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

var isTerminalFd = term.IsTerminal

// summaryStyles returns coloured styles on a terminal and plain ones otherwise.
func summaryStyles(cmd *cobra.Command) *styles.Styles {
	if isTerminal(cmd) {
		return styles.DefaultStyles()
	}
	return styles.PlainStyles()
}

func printSummary(cmd *cobra.Command, report *domain.RunReport) {
	cmd.Print(renderSummary(report, summaryStyles(cmd)))
}

func renderSummary(report *domain.RunReport, st *styles.Styles) string {
	var digital, scanned int
	for _, rec := range report.Records() {
		if rec.Kind.IsDigital() {
			digital++
		} else {
			scanned++
		}
	}

	out := "\n" + st.Title.Render("Summary") + "\n"
	out += fmt.Sprintf("  Documents: %d\n", len(report.Results))
	out += st.Success.Render(fmt.Sprintf("  Extracted: %d (%d digital, %d scanned)", report.Succeeded(), digital, scanned)) + "\n"
	if n := report.Failed(); n > 0 {
		out += st.Error.Render(fmt.Sprintf("  Failed:    %d", n)) + "\n"
		for _, f := range report.Failures() {
			out += st.Error.Render("    - "+f.Error()) + "\n"
		}
	}
	for _, c := range report.SkippedCategories {
		out += st.Muted.Render(fmt.Sprintf("  Skipped missing folder %q", c)) + "\n"
	}
	if d := report.Duration(); d > 0 {
		out += st.Muted.Render(fmt.Sprintf("  Took %s", d.Round(time.Millisecond))) + "\n"
	}
	return out
}
