package postprocessors

import (
	"fmt"
	"slices"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
	"github.com/custodia-labs/pdfwords/internal/postprocessors/alpha"
	"github.com/custodia-labs/pdfwords/internal/postprocessors/dedupe"
	"github.com/custodia-labs/pdfwords/internal/postprocessors/minlength"
)

// RegisterDefaults registers all built-in processors with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(domain.ProcessorAlpha, buildAlpha)
	r.Register(domain.ProcessorDedupe, buildDedupe)
	r.Register(domain.ProcessorMinLength, buildMinLength)
}

// BuildPipeline assembles the pipeline named by settings. The alphabetic
// filter and the dedupe stage are mandatory.
func BuildPipeline(r *Registry, settings domain.TokenSettings) (*Pipeline, error) {
	names := settings.Processors
	if len(names) == 0 {
		names = domain.DefaultProcessors()
	}
	for _, required := range domain.DefaultProcessors() {
		if !slices.Contains(names, required) {
			return nil, fmt.Errorf("%w: token pipeline is missing %q", domain.ErrInvalidInput, required)
		}
	}

	cfg := map[string]any{"min_length": settings.MinLength}
	p := NewPipeline()
	for _, name := range names {
		processor, err := r.Build(name, cfg)
		if err != nil {
			return nil, err
		}
		p.Add(processor)
	}
	return p, nil
}

func buildAlpha(_ map[string]any) (driven.TokenProcessor, error) {
	return alpha.New(), nil
}

func buildDedupe(_ map[string]any) (driven.TokenProcessor, error) {
	return dedupe.New(), nil
}

// buildMinLength creates a minimum-length filter from generic config.
// Supported config keys:
//   - min_length (int): shortest token kept, in runes
func buildMinLength(cfg map[string]any) (driven.TokenProcessor, error) {
	n := getIntFromConfig(cfg, "min_length")
	if n <= 0 {
		return nil, fmt.Errorf("%w: %s needs a positive min_length", domain.ErrInvalidInput, domain.ProcessorMinLength)
	}
	return minlength.New(n), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
