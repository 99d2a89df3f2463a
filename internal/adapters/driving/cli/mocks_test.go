package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driving"
)

// mockConfigService implements driving.ConfigService for testing.
type mockConfigService struct {
	settings domain.Settings
	values   map[string]string
	err      error
	setErr   error
}

func newMockConfigService() *mockConfigService {
	return &mockConfigService{settings: domain.DefaultSettings(), values: map[string]string{}}
}

func (m *mockConfigService) Settings() (domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockConfigService) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockConfigService) Set(key, raw string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = raw
	return nil
}

func (m *mockConfigService) Path() string {
	return "/home/test/.pdfwords/config.toml"
}

// mockExtractionService implements driving.ExtractionService for testing.
type mockExtractionService struct {
	report *domain.RunReport
	err    error
	kinds   map[string]domain.DocumentKind
	records map[string]domain.ExtractedRecord
	runs    int
}

func (m *mockExtractionService) Run(_ context.Context, _ driving.ProgressFunc) (*domain.RunReport, error) {
	m.runs++
	return m.report, m.err
}

func (m *mockExtractionService) Classify(_ context.Context, path string) (domain.DocumentKind, error) {
	kind, ok := m.kinds[path]
	if !ok {
		return "", domain.ErrDocumentOpen
	}
	return kind, nil
}

func (m *mockExtractionService) ExtractFile(_ context.Context, path string) (domain.ExtractedRecord, error) {
	rec, ok := m.records[path]
	if !ok {
		return domain.ExtractedRecord{}, domain.ErrDocumentOpen
	}
	return rec, nil
}

// mockDiagnostics implements driving.DiagnosticsService for testing.
type mockDiagnostics struct {
	statuses []domain.ToolStatus
}

func (m *mockDiagnostics) Check(_ context.Context) []domain.ToolStatus {
	return m.statuses
}

// testServices wires mocks into the CLI and records the settings each
// extraction service was built with.
type testServices struct {
	config      *mockConfigService
	extraction  *mockExtractionService
	diagnostics *mockDiagnostics
	settings    []domain.Settings
	configDirs  []string
}

func setupServices(t *testing.T) *testServices {
	t.Helper()
	ts := &testServices{
		config:      newMockConfigService(),
		extraction:  &mockExtractionService{report: &domain.RunReport{OutputPath: "extracted_words.csv"}},
		diagnostics: &mockDiagnostics{},
	}

	old := services
	SetServices(Services{
		Config: func(dir string) (driving.ConfigService, error) {
			ts.configDirs = append(ts.configDirs, dir)
			return ts.config, nil
		},
		Extraction: func(s domain.Settings) (driving.ExtractionService, error) {
			ts.settings = append(ts.settings, s)
			return ts.extraction, nil
		},
		Diagnostics: func(_ domain.Settings) driving.DiagnosticsService {
			return ts.diagnostics
		},
	})
	t.Cleanup(func() { SetServices(old) })
	return ts
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so values set by one test
// do not leak into the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
