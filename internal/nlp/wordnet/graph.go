// internal/nlp/wordnet/graph.go
package wordnet

import "strings"

// synset is one node of the embedded hypernym tree. Parent is the synset id
// of the hypernym, empty for the root.
type synset struct {
	ID     string
	Parent string
	Words  []string
}

// synsets is the embedded sense network. It covers the conversational and
// booking vocabulary the bot cares about; everything else is undefined.
var synsets = []synset{
	{ID: "entity", Parent: "", Words: nil},
	{ID: "abstraction", Parent: "entity", Words: nil},
	{ID: "object", Parent: "entity", Words: nil},

	{ID: "time", Parent: "abstraction", Words: []string{"time", "hour", "schedule"}},
	{ID: "showtime", Parent: "time", Words: []string{"showtime", "screening"}},

	{ID: "communication", Parent: "abstraction", Words: nil},
	{ID: "greeting", Parent: "communication", Words: []string{"hello", "hi", "hey", "greeting", "welcome", "morning", "afternoon", "evening"}},
	{ID: "farewell", Parent: "communication", Words: []string{"bye", "goodbye", "farewell"}},
	{ID: "name", Parent: "communication", Words: []string{"name", "nickname"}},
	{ID: "question", Parent: "communication", Words: []string{"question", "query"}},
	{ID: "assistance", Parent: "communication", Words: []string{"help", "assistance", "support", "assist"}},

	{ID: "event", Parent: "abstraction", Words: nil},
	{ID: "show", Parent: "event", Words: []string{"show", "performance"}},
	{ID: "movie", Parent: "show", Words: []string{"movie", "film", "flick", "cinema"}},
	{ID: "reservation", Parent: "event", Words: []string{"booking", "reservation", "order"}},

	{ID: "act", Parent: "abstraction", Words: nil},
	{ID: "reserve", Parent: "act", Words: []string{"book", "reserve"}},
	{ID: "search", Parent: "act", Words: []string{"search", "find", "browse", "list", "lookup"}},
	{ID: "watch", Parent: "act", Words: []string{"watch", "see", "view"}},
	{ID: "select", Parent: "act", Words: []string{"select", "choose", "pick"}},
	{ID: "confirm", Parent: "act", Words: []string{"confirm", "proceed", "agree"}},
	{ID: "cancel", Parent: "act", Words: []string{"cancel", "abort"}},
	{ID: "inspect", Parent: "act", Words: []string{"check", "inspect", "verify"}},
	{ID: "pay", Parent: "act", Words: []string{"pay", "payment", "purchase", "buy"}},

	{ID: "seat", Parent: "object", Words: []string{"seat", "chair", "place"}},
	{ID: "ticket", Parent: "object", Words: []string{"ticket", "pass"}},
	{ID: "person", Parent: "object", Words: []string{"person", "user", "guest"}},
}

// Graph is the Oracle implementation backed by the embedded hypernym tree.
// Similarity is 1/(1+d) where d is the edge distance between the two words'
// first senses.
type Graph struct {
	wordToSynset map[string]string
	parents      map[string]string
}

func NewGraph() *Graph {
	g := &Graph{
		wordToSynset: make(map[string]string),
		parents:      make(map[string]string),
	}
	for _, s := range synsets {
		g.parents[s.ID] = s.Parent
		for _, w := range s.Words {
			// first sense wins, later entries never overwrite
			if _, seen := g.wordToSynset[w]; !seen {
				g.wordToSynset[w] = s.ID
			}
		}
	}
	return g
}

// Similarity returns the path similarity of the two words, or false when
// either word has no sense in the network. Identical words always score 1.
func (g *Graph) Similarity(a, b string) (float64, bool) {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b && a != "" {
		return 1.0, true
	}

	sa, okA := g.wordToSynset[a]
	sb, okB := g.wordToSynset[b]
	if !okA || !okB {
		return 0, false
	}

	d := g.pathLength(sa, sb)
	if d < 0 {
		return 0, false
	}
	return 1.0 / float64(1+d), true
}

// pathLength walks both ancestor chains and returns the edge count through
// the lowest common ancestor, -1 when the nodes are disconnected.
func (g *Graph) pathLength(a, b string) int {
	depthA := g.ancestorDepths(a)

	steps := 0
	for node := b; node != ""; {
		if d, ok := depthA[node]; ok {
			return d + steps
		}
		node = g.parents[node]
		steps++
	}
	return -1
}

func (g *Graph) ancestorDepths(start string) map[string]int {
	depths := make(map[string]int)
	depth := 0
	for node := start; node != ""; {
		depths[node] = depth
		parent, ok := g.parents[node]
		if !ok {
			break
		}
		node = parent
		depth++
	}
	return depths
}
