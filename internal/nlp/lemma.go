// internal/nlp/lemma.go
package nlp

import "strings"

// irregular maps plural forms the suffix rules cannot reach.
var irregular = map[string]string{
	"children": "child",
	"men":      "man",
	"women":    "woman",
	"people":   "person",
	"feet":     "foot",
	"teeth":    "tooth",
	"mice":     "mouse",
}

// Lemmatize reduces a lowercase token to its base noun form. The rules cover
// regular English plurals; everything else passes through unchanged.
func Lemmatize(token string) string {
	if base, ok := irregular[token]; ok {
		return base
	}

	switch {
	case strings.HasSuffix(token, "sses"):
		return strings.TrimSuffix(token, "es")
	case strings.HasSuffix(token, "xes"),
		strings.HasSuffix(token, "zes"),
		strings.HasSuffix(token, "ches"),
		strings.HasSuffix(token, "shes"):
		return strings.TrimSuffix(token, "es")
	case strings.HasSuffix(token, "ss"),
		strings.HasSuffix(token, "us"),
		strings.HasSuffix(token, "is"):
		return token
	case strings.HasSuffix(token, "s") && len(token) > 3:
		return strings.TrimSuffix(token, "s")
	}

	return token
}
