package file

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultDirName is the config directory created under the user's home.
const DefaultDirName = ".pdfwords"

const fileName = "config.toml"

// ConfigStore keeps pdfwords settings in a TOML file. Tables are addressed
// with dotted keys ("ocr.dpi"). Values of keys listed in domain.ConfigKeys
// are normalised to their declared kind on load and on Set, so TOML int64
// becomes int and arrays become []string. Unknown keys are kept as parsed.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	values   map[string]any
}

// NewConfigStore opens <configDir>/config.toml, defaulting configDir to
// ~/.pdfwords. Nothing is created until the first Set.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, DefaultDirName)
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, fileName),
		values:   make(map[string]any),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the value stored under key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	n, _ := asInt(val)
	return n
}

func (s *ConfigStore) GetBool(key string) bool {
	val, _ := s.Get(key)
	b, _ := val.(bool)
	return b
}

// GetStringSlice returns a copy of a list value. A plain string is returned
// as a one-element list.
func (s *ConfigStore) GetStringSlice(key string) []string {
	val, _ := s.Get(key)
	if str, ok := val.(string); ok {
		return []string{str}
	}
	list, _ := asStrings(val)
	return list
}

// Keys returns the stored keys, sorted.
func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.values))
}

// Set stores value under key and rewrites the file.
func (s *ConfigStore) Set(key string, value any) error {
	if key == "" || strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") {
		return fmt.Errorf("invalid config key %q", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = normalise(key, value)
	return s.save()
}

// save must be called with the lock held.
func (s *ConfigStore) save() error {
	tree, err := nest(s.values)
	if err != nil {
		return err
	}
	data, err := toml.Marshal(tree)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Load re-reads the file, replacing the stored values. A missing file
// leaves the store empty.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		s.values = make(map[string]any)
		return nil
	}
	if err != nil {
		return err
	}

	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("parse %s: %w", s.filePath, err)
	}

	values := make(map[string]any)
	flatten(tree, "", values)
	s.values = values
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// flatten writes the leaves of tree into out under dotted keys, normalising
// each value for its key.
func flatten(tree map[string]any, prefix string, out map[string]any) {
	for name, value := range tree {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if table, ok := value.(map[string]any); ok {
			flatten(table, key, out)
			continue
		}
		out[key] = normalise(key, value)
	}
}

// nest turns dotted keys back into TOML tables. A key that is both a value
// and a table prefix ("a" and "a.b") is an error.
func nest(values map[string]any) (map[string]any, error) {
	root := make(map[string]any)

	for _, key := range slices.Sorted(maps.Keys(values)) {
		parts := strings.Split(key, ".")
		table := root
		for _, part := range parts[:len(parts)-1] {
			switch child := table[part].(type) {
			case nil:
				next := make(map[string]any)
				table[part] = next
				table = next
			case map[string]any:
				table = child
			default:
				return nil, fmt.Errorf("config key %q conflicts with value %q", key, part)
			}
		}
		leaf := parts[len(parts)-1]
		if _, isTable := table[leaf].(map[string]any); isTable {
			return nil, fmt.Errorf("config key %q conflicts with table", key)
		}
		table[leaf] = values[key]
	}
	return root, nil
}

// normalise converts value to the kind registered for key. Values that do
// not convert are kept unchanged and rejected later by the config service.
func normalise(key string, value any) any {
	k, ok := domain.LookupConfigKey(key)
	if !ok {
		return value
	}
	switch k.Kind {
	case domain.KindInt:
		if n, ok := asInt(value); ok {
			return n
		}
	case domain.KindStrings:
		if list, ok := asStrings(value); ok {
			return list
		}
	}
	return value
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

// asStrings accepts []string or a TOML array whose items are all strings.
func asStrings(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return slices.Clone(v), true
	case []any:
		list := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			list = append(list, str)
		}
		return list, true
	}
	return nil, false
}
