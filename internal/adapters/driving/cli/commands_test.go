package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pdfwords/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

func TestClassifyCmd_RequiresArgs(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "classify")

	assert.Error(t, err)
}

func TestClassifyCmd_Executes(t *testing.T) {
	ts := setupServices(t)
	ts.extraction.kinds = map[string]domain.DocumentKind{
		"a.pdf": domain.KindDigital,
		"b.pdf": domain.KindScanned,
	}

	out, err := execute(t, "classify", "a.pdf", "b.pdf")

	require.NoError(t, err)
	assert.Contains(t, out, "a.pdf\tdigital")
	assert.Contains(t, out, "b.pdf\tscanned")
}

func TestClassifyCmd_ReportsErrorsAndContinues(t *testing.T) {
	ts := setupServices(t)
	ts.extraction.kinds = map[string]domain.DocumentKind{"ok.pdf": domain.KindDigital}

	out, err := execute(t, "classify", "broken.pdf", "ok.pdf")

	assert.ErrorIs(t, err, domain.ErrDocumentOpen)
	assert.Contains(t, out, "broken.pdf\terror:")
	assert.Contains(t, out, "ok.pdf\tdigital")
}

func TestCheckCmd_AllAvailable(t *testing.T) {
	ts := setupServices(t)
	ts.diagnostics.statuses = []domain.ToolStatus{
		{Name: "pdftoppm", Available: true, Version: "24.02.0"},
		{Name: "tesseract", Available: true, Version: "5.3.4"},
	}

	out, err := execute(t, "check")

	require.NoError(t, err)
	assert.Contains(t, out, "✓ pdftoppm 24.02.0")
	assert.Contains(t, out, "✓ tesseract 5.3.4")
	assert.Contains(t, out, "All tools available.")
}

func TestCheckCmd_Missing(t *testing.T) {
	ts := setupServices(t)
	ts.diagnostics.statuses = []domain.ToolStatus{
		{Name: "pdftoppm", Detail: "not found in PATH", Install: "macOS: brew install poppler"},
		{Name: "tesseract", Available: true},
	}

	out, err := execute(t, "check")

	assert.ErrorIs(t, err, domain.ErrToolNotFound)
	assert.Contains(t, err.Error(), "pdftoppm")
	assert.Contains(t, out, "✗ pdftoppm: not found in PATH")
	assert.Contains(t, out, "    macOS: brew install poppler")
}

func TestCheckCmd_ServiceNotConfigured(t *testing.T) {
	old := services
	SetServices(Services{})
	defer SetServices(old)

	_, err := execute(t, "check")

	assert.EqualError(t, err, "diagnostics service not configured")
}

func TestConfigCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(configCmd.Commands()))
	for _, c := range configCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"show", "path", "set"}, names)
}

func TestConfigShowCmd(t *testing.T) {
	ts := setupServices(t)
	ts.config.values[domain.KeyInputRoot] = "scans"

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Config file: /home/test/.pdfwords/config.toml")
	assert.Regexp(t, `input\.root\s+scans`, out)
	assert.Regexp(t, `output\.path\s+\(not set\)`, out)
}

func TestConfigPathCmd(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "config", "path")

	require.NoError(t, err)
	assert.Equal(t, "/home/test/.pdfwords/config.toml\n", out)
}

func TestConfigSetCmd(t *testing.T) {
	ts := setupServices(t)

	out, err := execute(t, "config", "set", "ocr.dpi", "300")

	require.NoError(t, err)
	assert.Contains(t, out, "Set ocr.dpi = 300")
	assert.Equal(t, "300", ts.config.values["ocr.dpi"])
}

func TestConfigSetCmd_Error(t *testing.T) {
	ts := setupServices(t)
	ts.config.setErr = errors.New("unknown key")

	_, err := execute(t, "config", "set", "nope", "1")

	assert.ErrorContains(t, err, "failed to set nope")
}

func TestConfigCmd_ServiceNotConfigured(t *testing.T) {
	old := services
	SetServices(Services{})
	defer SetServices(old)

	_, err := execute(t, "config", "path")

	assert.EqualError(t, err, "config service not configured")
}

func TestRenderSummary_Plain(t *testing.T) {
	out := renderSummary(&domain.RunReport{}, styles.PlainStyles())

	assert.Equal(t, "\nSummary\n  Documents: 0\n  Extracted: 0 (0 digital, 0 scanned)\n", out)
}

func TestMCPCmd_HasServe(t *testing.T) {
	names := make([]string, 0, len(mcpCmd.Commands()))
	for _, c := range mcpCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"serve"}, names)

	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_ServiceNotConfigured(t *testing.T) {
	old := services
	SetServices(Services{})
	defer SetServices(old)

	_, err := execute(t, "mcp", "serve")

	assert.EqualError(t, err, "extraction service not configured")
}

func TestMCPServeCmd_RejectsArgs(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "mcp", "serve", "extra")

	assert.Error(t, err)
}
