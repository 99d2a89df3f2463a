package driving

import "github.com/custodia-labs/pdfwords/internal/core/domain"

// ConfigService reads and updates the persisted configuration.
type ConfigService interface {
	// Settings resolves defaults, the config file and environment overrides.
	Settings() (domain.Settings, error)

	// Get returns the stored value of key formatted for display.
	// The boolean is false when the key is unset.
	Get(key string) (string, bool, error)

	// Set parses raw according to the key's kind and persists it.
	Set(key, raw string) error

	// Path returns the configuration file path.
	Path() string
}
