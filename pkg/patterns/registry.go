// pkg/patterns/registry.go
package patterns

import (
	"encoding/json"
	"os"
)

// LoadRegistry reads a PatternRegistry from a JSON file.
func LoadRegistry(path string) (*PatternRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg PatternRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// Merge layers other on top of the receiver: entries for the same intent are
// replaced by other's entry, new intents are appended in other's order.
func (r *PatternRegistry) Merge(other *PatternRegistry) *PatternRegistry {
	merged := &PatternRegistry{
		Version:     other.Version,
		LastUpdated: other.LastUpdated,
		Entries:     make([]Entry, 0, len(r.Entries)+len(other.Entries)),
	}
	if merged.Version == "" {
		merged.Version = r.Version
	}

	override := make(map[string]Entry, len(other.Entries))
	for _, e := range other.Entries {
		override[e.Intent] = e
	}

	seen := make(map[string]struct{}, len(r.Entries))
	for _, e := range r.Entries {
		if o, ok := override[e.Intent]; ok {
			e = o
		}
		merged.Entries = append(merged.Entries, e)
		seen[e.Intent] = struct{}{}
	}
	for _, e := range other.Entries {
		if _, ok := seen[e.Intent]; !ok {
			merged.Entries = append(merged.Entries, e)
		}
	}

	return merged
}

// Find returns the entry for the given intent name, nil when absent.
func (r *PatternRegistry) Find(intent string) *Entry {
	for i := range r.Entries {
		if r.Entries[i].Intent == intent {
			return &r.Entries[i]
		}
	}
	return nil
}
