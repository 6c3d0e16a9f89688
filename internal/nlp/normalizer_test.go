// internal/nlp/normalizer_test.go
package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"movie-chatbot/internal/common/logger"
)

// ==========================
// Normalize Tests
// ==========================

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer(logger.NewTestLogger(t))

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    "What SHOWTIMES are Available?!",
			expected: []string{"showtime", "available"},
		},
		{
			name:     "drops stopwords",
			input:    "I want to book a movie",
			expected: []string{"want", "book", "movie"},
		},
		{
			name:     "lemmatizes plurals",
			input:    "movies tickets seats",
			expected: []string{"movie", "ticket", "seat"},
		},
		{
			name:     "keeps negation words",
			input:    "no",
			expected: []string{"no"},
		},
		{
			name:     "keeps yes despite the trailing s",
			input:    "yes",
			expected: []string{"yes"},
		},
		{
			name:     "empty input yields no tokens",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only yields no tokens",
			input:    "   \t  ",
			expected: nil,
		},
		{
			name:     "stopwords only yields no tokens",
			input:    "the a an of",
			expected: []string{},
		},
		{
			name:     "punctuation only yields no tokens",
			input:    "?!... --- !!!",
			expected: []string{},
		},
		{
			name:     "keeps digits inside tokens",
			input:    "seat A1 and B2",
			expected: []string{"seat", "a1", "b2"},
		},
		{
			name:     "trims leading and trailing apostrophes",
			input:    "'matrix'",
			expected: []string{"matrix"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.input)
			if len(tt.expected) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizer_Normalize_InvalidUTF8(t *testing.T) {
	n := NewNormalizer(logger.NewNoOpLogger())

	got := n.Normalize(string([]byte{0xff, 0xfe, 0xfd}))
	assert.Empty(t, got)
}

// ==========================
// Lemmatizer Tests
// ==========================

func TestLemmatize(t *testing.T) {
	tests := []struct {
		token    string
		expected string
	}{
		{"movies", "movie"},
		{"tickets", "ticket"},
		{"seats", "seat"},
		{"showtimes", "showtime"},
		{"buses", "buse"}, // suffix rules are deliberately shallow
		{"watches", "watch"},
		{"boxes", "box"},
		{"classes", "class"},
		{"glass", "glass"},
		{"status", "status"},
		{"this", "this"},
		{"yes", "yes"},
		{"bus", "bus"},
		{"people", "person"},
		{"men", "man"},
		{"children", "child"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lemmatize(tt.token))
		})
	}
}

// ==========================
// Stopword Tests
// ==========================

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("a"))
	assert.True(t, IsStopword("to"))
	assert.True(t, IsStopword("i'm"))

	// negations and confirmations carry intent and must survive
	assert.False(t, IsStopword("no"))
	assert.False(t, IsStopword("yes"))
	assert.False(t, IsStopword("movie"))
}
