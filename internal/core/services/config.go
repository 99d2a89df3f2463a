package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driving"
)

// Ensure ConfigService implements the interface.
var _ driving.ConfigService = (*ConfigService)(nil)

// ConfigService resolves settings from defaults, the config store and
// PDFWORDS_* environment variables, in increasing priority.
type ConfigService struct {
	store     driven.ConfigStore
	lookupEnv func(string) (string, bool)
}

// NewConfigService creates a new config service reading the process environment.
func NewConfigService(store driven.ConfigStore) *ConfigService {
	return &ConfigService{
		store:     store,
		lookupEnv: os.LookupEnv,
	}
}

// Settings returns the resolved settings. They are not validated here so
// that callers can apply flag overrides first.
func (s *ConfigService) Settings() (domain.Settings, error) {
	settings := domain.DefaultSettings()
	formatSet := false

	for _, key := range domain.ConfigKeys() {
		var (
			val any
			err error
		)
		if raw, ok := s.lookupEnv(key.Env); ok {
			val, err = parseValue(key, raw)
			if err != nil {
				return domain.Settings{}, fmt.Errorf("%s: %w", key.Env, err)
			}
		} else {
			stored, ok := s.store.Get(key.Name)
			if !ok {
				continue
			}
			val, err = coerceValue(key, stored)
			if err != nil {
				return domain.Settings{}, fmt.Errorf("%s in %s: %w", key.Name, s.store.Path(), err)
			}
		}

		applyValue(&settings, key.Name, val)
		if key.Name == domain.KeyOutputFormat {
			formatSet = true
		}
	}

	if !formatSet {
		settings.Output.Format = domain.FormatFromPath(settings.Output.Path)
	}
	return settings, nil
}

// Get returns the stored value of key formatted for display.
func (s *ConfigService) Get(key string) (string, bool, error) {
	k, ok := domain.LookupConfigKey(key)
	if !ok {
		return "", false, fmt.Errorf("%w: config key %q", domain.ErrNotFound, key)
	}
	stored, ok := s.store.Get(k.Name)
	if !ok {
		return "", false, nil
	}
	val, err := coerceValue(k, stored)
	if err != nil {
		return "", true, err
	}
	return formatValue(val), true, nil
}

// Set parses raw according to the key's kind and persists it.
func (s *ConfigService) Set(key, raw string) error {
	k, ok := domain.LookupConfigKey(key)
	if !ok {
		return fmt.Errorf("%w: config key %q", domain.ErrNotFound, key)
	}
	val, err := parseValue(k, raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if k.Name == domain.KeyOutputFormat {
		if f := domain.OutputFormat(val.(string)); !f.IsValid() {
			return fmt.Errorf("%w: output format %q", domain.ErrUnsupportedType, f)
		}
	}
	return s.store.Set(k.Name, val)
}

// Path returns the configuration file path.
func (s *ConfigService) Path() string {
	return s.store.Path()
}

// parseValue converts a command-line or environment string. Lists are
// comma-separated.
func parseValue(key domain.ConfigKey, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch key.Kind {
	case domain.KindStrings:
		var items []string
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items, nil
	case domain.KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", domain.ErrInvalidInput, raw)
		}
		return b, nil
	case domain.KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidInput, raw)
		}
		return n, nil
	default:
		return raw, nil
	}
}

// coerceValue normalises a value decoded from TOML to the key's kind.
func coerceValue(key domain.ConfigKey, v any) (any, error) {
	switch key.Kind {
	case domain.KindStrings:
		switch t := v.(type) {
		case []string:
			return t, nil
		case []any:
			items := make([]string, 0, len(t))
			for _, item := range t {
				str, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("%w: list item %v is not a string", domain.ErrInvalidInput, item)
				}
				items = append(items, str)
			}
			return items, nil
		case string:
			return parseValue(key, t)
		}
	case domain.KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case domain.KindInt:
		switch t := v.(type) {
		case int:
			return t, nil
		case int64:
			return int(t), nil
		case float64:
			return int(t), nil
		}
	default:
		if str, ok := v.(string); ok {
			return str, nil
		}
	}
	return nil, fmt.Errorf("%w: unexpected value %v (%T)", domain.ErrInvalidInput, v, v)
}

func formatValue(v any) string {
	switch t := v.(type) {
	case []string:
		return strings.Join(t, ",")
	default:
		return fmt.Sprint(t)
	}
}

//nolint:gocyclo // One case per config key
func applyValue(s *domain.Settings, name string, v any) {
	switch name {
	case domain.KeyInputRoot:
		s.Input.Root = v.(string)
	case domain.KeyInputCategories:
		s.Input.Categories = v.([]string)
	case domain.KeyInputIgnoreCaseExt:
		s.Input.IgnoreCaseExt = v.(bool)
	case domain.KeyOutputPath:
		s.Output.Path = v.(string)
	case domain.KeyOutputFormat:
		s.Output.Format = domain.OutputFormat(strings.ToLower(v.(string)))
	case domain.KeyOCRLanguages:
		s.OCR.Languages = v.([]string)
	case domain.KeyOCRTessdataPrefix:
		s.OCR.TessdataPrefix = v.(string)
	case domain.KeyOCRDPI:
		s.OCR.DPI = v.(int)
	case domain.KeyRasterPDFToPPM:
		s.Raster.PDFToPPMPath = v.(string)
	case domain.KeyTokensProcessors:
		s.Tokens.Processors = v.([]string)
	case domain.KeyTokensMinLength:
		s.Tokens.MinLength = v.(int)
	}
}
