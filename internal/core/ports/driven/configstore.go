package driven

// ConfigStore is the persisted key/value configuration behind `pdfwords
// config`. Keys use dot notation for nested tables ("ocr.dpi"); the typed
// getters return the zero value when a key is absent or holds another type.
type ConfigStore interface {
	// Get returns the raw value stored under key.
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	// GetStringSlice also accepts a single string, returned as one element.
	GetStringSlice(key string) []string

	// Keys lists stored keys, sorted.
	Keys() []string

	// Set writes value under key and persists the whole file.
	Set(key string, value any) error

	// Load re-reads the file. A missing file yields an empty store.
	Load() error

	// Path is the location of the backing file.
	Path() string
}
