package mcp

import (
	"context"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driving"
)

// mockExtractionService is a mock implementation of driving.ExtractionService.
type mockExtractionService struct {
	kinds   map[string]domain.DocumentKind
	records map[string]domain.ExtractedRecord
	err     error
	paths   []string
}

func (m *mockExtractionService) Run(_ context.Context, _ driving.ProgressFunc) (*domain.RunReport, error) {
	return &domain.RunReport{}, m.err
}

func (m *mockExtractionService) Classify(_ context.Context, path string) (domain.DocumentKind, error) {
	m.paths = append(m.paths, path)
	if m.err != nil {
		return "", m.err
	}
	return m.kinds[path], nil
}

func (m *mockExtractionService) ExtractFile(_ context.Context, path string) (domain.ExtractedRecord, error) {
	m.paths = append(m.paths, path)
	if m.err != nil {
		return domain.ExtractedRecord{}, m.err
	}
	return m.records[path], nil
}

// mockConfigService is a mock implementation of driving.ConfigService.
type mockConfigService struct {
	values map[string]string
	err    error
}

func (m *mockConfigService) Settings() (domain.Settings, error) {
	return domain.DefaultSettings(), m.err
}

func (m *mockConfigService) Get(key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockConfigService) Set(_, _ string) error {
	return m.err
}

func (m *mockConfigService) Path() string {
	return "/home/test/.pdfwords/config.toml"
}
