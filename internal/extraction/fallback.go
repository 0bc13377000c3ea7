package extraction

import "strings"

// Fallback returns every vocabulary entry whose lower-cased form occurs in the
// lower-cased text, in vocabulary order. It never fails and never returns nil.
//
// Matching is plain substring containment, so short entries such as "R" or
// "Go" also match inside longer words.
func Fallback(text string, vocab Vocabulary) []string {
	found := make([]string, 0)
	if text == "" {
		return found
	}

	lower := strings.ToLower(text)
	for _, skill := range vocab {
		if skill == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}
