// Package tokenizer splits text into words the way the Penn Treebank
// tokenizer does.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
)

// Ensure Tokenizer implements the interface.
var _ driven.Tokenizer = (*Tokenizer)(nil)

// Tokenizer produces Treebank-style tokens. UAX #29 segmentation finds the
// whitespace between chunks; inside a chunk only Treebank punctuation
// splits, so hyphenated compounds and symbols such as "/" stay attached.
// Clitics are split off their host: "company's" gives "company" and "'s",
// "isn't" gives "is" and "n't", "cannot" gives "can" and "not".
type Tokenizer struct{}

// New creates a new Treebank tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize returns the tokens of text in order.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var chunk strings.Builder
	flush := func() {
		if chunk.Len() > 0 {
			tokens = append(tokens, splitChunk(chunk.String())...)
			chunk.Reset()
		}
	}

	state := -1
	for len(text) > 0 {
		var word string
		word, text, state = uniseg.FirstWordInString(text, state)
		if strings.TrimFunc(word, unicode.IsSpace) == "" {
			flush()
			continue
		}
		chunk.WriteString(word)
	}
	flush()
	return tokens
}

// splitRunes always stand alone.
const splitRunes = ";@#$%&?!()[]{}<>\"«»“”‘’„`"

// splitChunk applies the punctuation rules to one whitespace-free chunk and
// then splits clitics off every remaining word.
func splitChunk(chunk string) []string {
	runes := []rune(chunk)
	var pieces []string
	var cur []rune
	emit := func(s string) {
		if len(cur) > 0 {
			pieces = append(pieces, string(cur))
			cur = cur[:0]
		}
		if s != "" {
			pieces = append(pieces, s)
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case strings.ContainsRune(splitRunes, r):
			emit(string(r))
		case (r == ',' || r == ':') && (i+1 == len(runes) || !unicode.IsDigit(runes[i+1])):
			emit(string(r))
		case r == '-' && i+1 < len(runes) && runes[i+1] == '-':
			emit("--")
			i++
		case r == '.' && i+2 < len(runes) && runes[i+1] == '.' && runes[i+2] == '.':
			emit("...")
			i += 2
		default:
			cur = append(cur, r)
		}
	}
	emit("")

	// A final period leaves the last word, as at the end of a sentence.
	if n := len(pieces); n > 0 {
		last := pieces[n-1]
		if len(last) > 1 && strings.HasSuffix(last, ".") && !strings.HasSuffix(last, "..") {
			pieces = append(pieces[:n-1], strings.TrimSuffix(last, "."), ".")
		}
	}

	tokens := make([]string, 0, len(pieces))
	for _, p := range pieces {
		tokens = append(tokens, splitClitics(p)...)
	}
	return tokens
}

var (
	// Matched first, then the short suffixes below on what remains.
	cliticsShort = []string{"'s", "'S", "'m", "'M", "'d", "'D", "'"}
	cliticsLong  = []string{"'ll", "'LL", "'re", "'RE", "'ve", "'VE", "n't", "N'T"}

	// Whole words split in two regardless of case.
	contractions = map[string]int{
		"cannot": 3,
		"d'ye":   2,
		"gimme":  3,
		"gonna":  3,
		"gotta":  3,
		"lemme":  3,
		"more'n": 4,
		"wanna":  3,
		"'tis":   2,
		"'twas":  2,
	}
)

func splitClitics(word string) []string {
	head, short := cutSuffix(word, cliticsShort)
	head, long := cutSuffix(head, cliticsLong)

	var out []string
	if at, ok := contractions[strings.ToLower(head)]; ok {
		out = append(out, head[:at], head[at:])
	} else {
		out = append(out, head)
	}
	if long != "" {
		out = append(out, long)
	}
	if short != "" {
		out = append(out, short)
	}
	return out
}

// cutSuffix splits the first matching suffix off word. The remaining head
// must be non-empty and must not end in an apostrophe.
func cutSuffix(word string, suffixes []string) (string, string) {
	for _, s := range suffixes {
		head, ok := strings.CutSuffix(word, s)
		if ok && head != "" && !strings.HasSuffix(head, "'") {
			return head, s
		}
	}
	return word, ""
}
