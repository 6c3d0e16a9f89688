// internal/nlp/stopwords.go
package nlp

// stopwords is the English function-word list stripped during normalization.
// "no" and "yes" are deliberately absent so bare confirmations and denials
// survive into the classifier.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "again": {}, "all": {}, "also": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "because": {}, "been": {}, "before": {}, "being": {}, "but": {},
	"by": {}, "can": {}, "could": {}, "did": {}, "do": {}, "does": {},
	"doing": {}, "down": {}, "during": {}, "each": {}, "few": {}, "for": {},
	"from": {}, "further": {}, "had": {}, "has": {}, "have": {}, "having": {},
	"he": {}, "her": {}, "here": {}, "hers": {}, "him": {}, "his": {},
	"how": {}, "i": {}, "if": {}, "in": {}, "into": {}, "is": {},
	"it": {}, "its": {}, "itself": {}, "just": {}, "me": {}, "more": {},
	"most": {}, "my": {}, "myself": {}, "of": {}, "off": {}, "on": {},
	"once": {}, "only": {}, "or": {}, "other": {}, "our": {}, "ours": {},
	"out": {}, "over": {}, "own": {}, "same": {}, "she": {}, "should": {},
	"so": {}, "some": {}, "such": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "theirs": {}, "them": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "through": {},
	"to": {}, "too": {}, "under": {}, "until": {}, "up": {}, "very": {},
	"was": {}, "we": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "whom": {}, "why": {}, "will": {},
	"with": {}, "would": {}, "you": {}, "your": {}, "yours": {},
	"i'm": {}, "it's": {}, "don't": {}, "that's": {}, "what's": {},
}

// IsStopword reports whether the lowercase token is on the stopword list.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
