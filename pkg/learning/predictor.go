package learning

import (
	"strings"

	"github.com/sigmind/sigmem-go/pkg/sigel"
)

// UnknownToken is returned when no temporal pattern matches and the last
// context token has no semantic neighbors.
const UnknownToken = "unknown"

// PredictNext predicts the token following a 3-token context.
//
// Resolution order:
//  1. First temporal pattern whose context contains the query
//     (case-insensitive, first-inserted wins).
//  2. Uniform random pick among the semantic neighbors of the last context
//     token. The lookup uses the token as given; network keys are lowercased
//     cleaned words, so a mixed-case token can miss.
//  3. UnknownToken.
//
// Read-only over the sigel; never fails and never panics, for any context.
func (l *Learner) PredictNext(sg *sigel.Sigel, context []string) string {
	if len(context) == 0 {
		return UnknownToken
	}

	if tok, ok := sg.Patterns.MatchTemporal(strings.Join(context, " ")); ok {
		return tok
	}

	last := context[len(context)-1]
	if related := sg.Patterns.Semantic.Neighbors(last); len(related) > 0 {
		return related[l.intn(len(related))]
	}

	return UnknownToken
}

// Accuracy scores a prediction against the actual token, case-insensitively:
//
//	1.0  exact match
//	0.7  predicted is a substring of actual
//	0.6  actual is a substring of predicted
//	else 0.4 * shared/maxLen, where shared counts characters of predicted
//	     that appear anywhere in actual (not positional alignment)
func Accuracy(predicted, actual string) float64 {
	p := strings.ToLower(predicted)
	a := strings.ToLower(actual)

	switch {
	case p == a:
		return 1.0
	case strings.Contains(a, p):
		return 0.7
	case strings.Contains(p, a):
		return 0.6
	}

	pRunes := []rune(p)
	aRunes := []rune(a)
	shared := 0
	for _, r := range pRunes {
		if strings.ContainsRune(a, r) {
			shared++
		}
	}

	maxLen := len(pRunes)
	if len(aRunes) > maxLen {
		maxLen = len(aRunes)
	}
	if maxLen == 0 {
		return 0.0
	}
	return float64(shared) / float64(maxLen) * 0.4
}
