package domain

// Configuration keys, in dot-notation as stored in the config file.
const (
	KeyInputRoot          = "input.root"
	KeyInputCategories    = "input.categories"
	KeyInputIgnoreCaseExt = "input.ignore_case_ext"
	KeyOutputPath         = "output.path"
	KeyOutputFormat       = "output.format"
	KeyOCRLanguages       = "ocr.languages"
	KeyOCRTessdataPrefix  = "ocr.tessdata_prefix"
	KeyOCRDPI             = "ocr.dpi"
	KeyRasterPDFToPPM     = "raster.pdftoppm_path"
	KeyTokensProcessors   = "tokens.processors"
	KeyTokensMinLength    = "tokens.min_length"
)

// ValueKind is the type a configuration value is stored as.
type ValueKind int

// Value kinds.
const (
	KindString ValueKind = iota
	KindStrings
	KindBool
	KindInt
)

// ConfigKey describes one supported configuration key.
type ConfigKey struct {
	// Name is the dot-notation key.
	Name string

	// Kind is the stored value type.
	Kind ValueKind

	// Env is the environment variable that overrides the key.
	Env string
}

var configKeys = []ConfigKey{
	{KeyInputRoot, KindString, "PDFWORDS_INPUT_ROOT"},
	{KeyInputCategories, KindStrings, "PDFWORDS_INPUT_CATEGORIES"},
	{KeyInputIgnoreCaseExt, KindBool, "PDFWORDS_INPUT_IGNORE_CASE_EXT"},
	{KeyOutputPath, KindString, "PDFWORDS_OUTPUT_PATH"},
	{KeyOutputFormat, KindString, "PDFWORDS_OUTPUT_FORMAT"},
	{KeyOCRLanguages, KindStrings, "PDFWORDS_OCR_LANGUAGES"},
	{KeyOCRTessdataPrefix, KindString, "PDFWORDS_OCR_TESSDATA_PREFIX"},
	{KeyOCRDPI, KindInt, "PDFWORDS_OCR_DPI"},
	{KeyRasterPDFToPPM, KindString, "PDFWORDS_RASTER_PDFTOPPM_PATH"},
	{KeyTokensProcessors, KindStrings, "PDFWORDS_TOKENS_PROCESSORS"},
	{KeyTokensMinLength, KindInt, "PDFWORDS_TOKENS_MIN_LENGTH"},
}

// ConfigKeys returns all supported configuration keys.
func ConfigKeys() []ConfigKey {
	return append([]ConfigKey(nil), configKeys...)
}

// LookupConfigKey returns the key description for name.
func LookupConfigKey(name string) (ConfigKey, bool) {
	for _, k := range configKeys {
		if k.Name == name {
			return k, true
		}
	}
	return ConfigKey{}, false
}
