// internal/dialogue/extract.go
package dialogue

import (
	"regexp"
	"strings"
)

// namePatterns anchor the word following a self-introduction phrase. They run
// against the lowercased input.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`my name is (\w+)`),
	regexp.MustCompile(`call me (\w+)`),
	regexp.MustCompile(`i am (\w+)`),
	regexp.MustCompile(`i'm (\w+)`),
	regexp.MustCompile(`name'?s (\w+)`),
}

// ExtractName pulls a user name out of free text. If no anchor phrase
// matches, it falls back to the first token carrying an uppercase letter in
// the original input. The fallback is a weak heuristic and happily picks up
// capitalized non-name words.
func ExtractName(text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, re := range namePatterns {
		if m := re.FindStringSubmatch(lowered); m != nil {
			return capitalize(m[1]), true
		}
	}

	for _, word := range strings.Fields(text) {
		if word != strings.ToLower(word) {
			return capitalize(word), true
		}
	}

	return "", false
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	word = strings.ToLower(word)
	return strings.ToUpper(word[:1]) + word[1:]
}
