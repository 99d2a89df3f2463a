package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cleanupReplacer removes the fixed punctuation set and folds newlines.
var cleanupReplacer = strings.NewReplacer(
	"（", "",
	")", "",
	"\n", " ",
	",", "",
	".", "",
)

// CleanupText normalises the text of a single page: full Unicode lowercase,
// removal of U+FF08 and ')', newlines to spaces, removal of ',' and '.'.
// Applying it twice yields the same result as applying it once.
func CleanupText(text string) string {
	lower := cases.Lower(language.Und).String(text)
	return cleanupReplacer.Replace(lower)
}
