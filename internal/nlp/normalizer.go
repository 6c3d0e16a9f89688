// internal/nlp/normalizer.go
package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"movie-chatbot/internal/common/logger"
)

// Normalizer turns raw utterances into cleaned, lemmatized tokens.
type Normalizer struct {
	logger logger.Logger
}

func NewNormalizer(log logger.Logger) *Normalizer {
	return &Normalizer{
		logger: log.With(map[string]interface{}{
			"component": "normalizer",
		}),
	}
}

// Normalize lowercases and trims the input, splits it into word tokens,
// lemmatizes each token and drops stopwords and pure punctuation. It never
// fails toward the caller: malformed input is logged and yields no tokens.
func (n *Normalizer) Normalize(text string) []string {
	if !utf8.ValidString(text) {
		n.logger.Warn("dropping malformed utf-8 input", map[string]interface{}{
			"length": len(text),
		})
		return nil
	}

	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	raw := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.Trim(tok, "'")
		if tok == "" || IsStopword(tok) {
			continue
		}
		tokens = append(tokens, Lemmatize(tok))
	}

	return tokens
}
