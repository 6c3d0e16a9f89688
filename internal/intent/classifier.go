// internal/intent/classifier.go
package intent

import (
	"strings"

	"movie-chatbot/internal/common/logger"
	"movie-chatbot/internal/common/metrics"
	"movie-chatbot/internal/nlp"
	"movie-chatbot/internal/nlp/wordnet"
)

// DefaultThreshold is the minimum winning score before the classifier falls
// back to Unknown.
const DefaultThreshold = 0.2

// Classifier scores utterances against the pattern library using exact
// substring matches and oracle-backed token-set similarity.
type Classifier struct {
	normalizer *nlp.Normalizer
	oracle     wordnet.Oracle
	library    *Library
	threshold  float64
	logger     logger.Logger
}

func NewClassifier(normalizer *nlp.Normalizer, oracle wordnet.Oracle, library *Library, threshold float64, log logger.Logger) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{
		normalizer: normalizer,
		oracle:     oracle,
		library:    library,
		threshold:  threshold,
		logger: log.With(map[string]interface{}{
			"component": "classifier",
		}),
	}
}

// Classify resolves the intent of one utterance. It never fails toward the
// dialogue layer: any scoring panic is logged and degrades to Unknown.
func (c *Classifier) Classify(utterance string) (result Intent) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("intent scoring panicked", map[string]interface{}{
				"panic": r,
			})
			result = Unknown
		}
		metrics.IntentsClassified.WithLabelValues(result.String()).Inc()
	}()

	queryTokens := c.normalizer.Normalize(utterance)
	if len(queryTokens) == 0 {
		return Unknown
	}

	lowered := strings.ToLower(utterance)

	best := Unknown
	bestScore := 0.0
	for _, in := range All() {
		if in == Unknown {
			continue
		}
		score := c.scoreIntent(in, lowered, queryTokens)
		// strict comparison keeps the earliest intent on ties
		if score > bestScore {
			best, bestScore = in, score
		}
	}

	if bestScore < c.threshold {
		metrics.ClassifierFallbacks.Inc()
		return Unknown
	}

	c.logger.Debug("classified utterance", map[string]interface{}{
		"intent": best.String(),
		"score":  bestScore,
	})
	return best
}

// scoreIntent is the per-intent pattern score: 1.0 on the first exact
// substring hit, otherwise the best token-set similarity over the intent's
// example phrases.
func (c *Classifier) scoreIntent(in Intent, lowered string, queryTokens []string) float64 {
	maxScore := 0.0
	for _, example := range c.library.Examples(in) {
		if strings.Contains(lowered, strings.ToLower(example)) {
			return 1.0
		}

		patternTokens := c.normalizer.Normalize(example)
		if len(patternTokens) == 0 {
			continue
		}
		if s := c.tokenSetSimilarity(queryTokens, patternTokens); s > maxScore {
			maxScore = s
		}
	}
	return maxScore
}

// tokenSetSimilarity averages, over the query tokens that have any defined
// similarity, each token's best oracle score against the pattern tokens.
func (c *Classifier) tokenSetSimilarity(queryTokens, patternTokens []string) float64 {
	sum := 0.0
	contributing := 0
	for _, q := range queryTokens {
		best := 0.0
		found := false
		for _, p := range patternTokens {
			s, ok := c.oracle.Similarity(q, p)
			if ok && s > best {
				best = s
				found = true
			}
		}
		if found && best > 0 {
			sum += best
			contributing++
		}
	}

	if contributing == 0 {
		return 0
	}
	return sum / float64(contributing)
}
