// pkg/patterns/schema.go
package patterns

// PatternRegistry is the declarative intent-pattern catalog. It can be
// shipped as JSON and loaded at startup; the built-in default lives in
// internal/intent.
type PatternRegistry struct {
	Version     string  `json:"version"`
	LastUpdated string  `json:"lastUpdated"`
	Entries     []Entry `json:"entries"`
}

// Entry maps one intent name to its example phrases and response templates.
// Examples and Responses keep their declared order; response templates are
// informational, replies are built procedurally by the dialogue layer.
type Entry struct {
	Intent    string   `json:"intent"`
	Examples  []string `json:"examples"`
	Responses []string `json:"responses,omitempty"`
}
