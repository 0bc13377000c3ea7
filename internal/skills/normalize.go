// Package skills provides skill-name normalization and the set-based match engine.
package skills

import (
	"strings"
	"unicode"
)

// Normalize returns the canonical form of a skill name used for equality:
// lower-cased, with every period, whitespace and hyphen removed.
// "Node.js", "nodejs" and "NODE JS" all normalize to "nodejs".
func Normalize(skill string) string {
	return strings.Map(func(r rune) rune {
		if r == '.' || r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(skill))
}

// NormalizeSet builds a lookup set of canonical forms.
func NormalizeSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[Normalize(name)] = struct{}{}
	}
	return set
}
