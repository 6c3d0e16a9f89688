// internal/nlp/wordnet/oracle.go

// Package wordnet provides the lexical similarity oracle used by the intent
// classifier: a dictionary-backed word-sense network that scores word pairs
// in [0,1].
package wordnet

// Oracle answers word-pair similarity lookups. The second return value is
// false when the similarity is undefined for the pair (unknown words); the
// caller must treat that as a zero contribution. Lookups have no side effects.
type Oracle interface {
	Similarity(a, b string) (float64, bool)
}
