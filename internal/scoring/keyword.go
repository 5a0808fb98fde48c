package scoring

import "strings"

// MaxScore is the top of the readiness scale.
const MaxScore = 4

// KeywordScore counts how many distinct keywords appear as whole
// whitespace-separated tokens of answer, ignoring case, capped at MaxScore.
// Punctuation is part of a token, so "education." does not match "education".
func KeywordScore(answer string, keywords []string) int {
	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(answer)) {
		tokens[tok] = struct{}{}
	}
	if len(tokens) == 0 {
		return 0
	}

	matched := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if _, ok := tokens[kw]; ok {
			matched[kw] = struct{}{}
		}
	}
	return min(len(matched), MaxScore)
}
