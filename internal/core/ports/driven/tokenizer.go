package driven

// Tokenizer splits text into word tokens following the Penn Treebank
// conventions. Whitespace is never returned; punctuation and split-off
// clitics ("'s", "n't") are returned as separate tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}
