package learning

import (
	"strings"
	"unicode"
)

// SplitSentences splits text into sentences on '.', '!', and '?'.
// Terminators are dropped; empty segments are kept and filtered by callers.
func SplitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

// Tokenize splits a sentence into whitespace-separated tokens.
func Tokenize(sentence string) []string {
	return strings.Fields(sentence)
}

// CleanWord lowercases w and strips leading/trailing non-letters. The result
// may be empty, in which case no semantic edge is recorded for it.
func CleanWord(w string) string {
	return strings.TrimFunc(strings.ToLower(w), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
