package learning

import "strings"

// Fixed affect lexicons. Each matched entry contributes a constant amount to
// a sentence's emotional weight; the total is clamped to [-1, 1].
var (
	positiveWords = []string{"love", "joy", "happy", "wonderful", "amazing", "beautiful", "peace", "harmony"}
	negativeWords = []string{"hate", "sad", "terrible", "awful", "pain", "suffer", "angry", "fear"}
	profoundWords = []string{"consciousness", "universe", "existence", "meaning", "purpose", "infinite", "eternal"}
)

const (
	positiveContribution = 0.5
	negativeContribution = -0.3
	profoundContribution = 0.8
)

// EmotionalWeight computes the lexicon-derived affect of text, in [-1, 1].
//
// Matching is substring-based over the lowercased text, so "lovely" matches
// "love". Each lexicon entry contributes at most once.
func EmotionalWeight(text string) float64 {
	lower := strings.ToLower(text)
	weight := 0.0

	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			weight += positiveContribution
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			weight += negativeContribution
		}
	}
	for _, w := range profoundWords {
		if strings.Contains(lower, w) {
			weight += profoundContribution
		}
	}

	if weight > 1.0 {
		return 1.0
	}
	if weight < -1.0 {
		return -1.0
	}
	return weight
}
