package learning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sigmind/sigmem-go/pkg/learning"
)

func TestSplitSentences(t *testing.T) {
	sentences := learning.SplitSentences("The cat sat. Did it move? It did not!")
	assert.Equal(t, []string{"The cat sat", " Did it move", " It did not"}, sentences)
}

func TestSplitSentencesNoTerminator(t *testing.T) {
	assert.Equal(t, []string{"no terminator here"}, learning.SplitSentences("no terminator here"))
	assert.Empty(t, learning.SplitSentences(""))
	assert.Empty(t, learning.SplitSentences("..."))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"the", "cat", "sat"}, learning.Tokenize("  the   cat sat "))
	assert.Empty(t, learning.Tokenize("   "))
}

func TestCleanWord(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"Cat", "cat"},
		{"cat,", "cat"},
		{"\"quoted\"", "quoted"},
		{"don't", "don't"}, // inner punctuation survives
		{"123", ""},
		{"", ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, learning.CleanWord(tc.in), "CleanWord(%q)", tc.in)
	}
}
