// pkg/patterns/registry_test.go
package patterns

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Merge(t *testing.T) {
	base := &PatternRegistry{
		Version: "1.0",
		Entries: []Entry{
			{Intent: "greeting", Examples: []string{"hello"}},
			{Intent: "farewell", Examples: []string{"bye"}},
		},
	}
	overlay := &PatternRegistry{
		Version: "1.1",
		Entries: []Entry{
			{Intent: "greeting", Examples: []string{"hi", "hey"}},
			{Intent: "movie_search", Examples: []string{"show movies"}},
		},
	}

	merged := base.Merge(overlay)

	assert.Equal(t, "1.1", merged.Version)
	require.Len(t, merged.Entries, 3)

	// same-intent entries are replaced in place
	assert.Equal(t, "greeting", merged.Entries[0].Intent)
	assert.Equal(t, []string{"hi", "hey"}, merged.Entries[0].Examples)

	// untouched entries keep their position, new ones append
	assert.Equal(t, "farewell", merged.Entries[1].Intent)
	assert.Equal(t, "movie_search", merged.Entries[2].Intent)
}

func TestRegistry_Find(t *testing.T) {
	reg := &PatternRegistry{
		Entries: []Entry{{Intent: "greeting", Examples: []string{"hello"}}},
	}

	e := reg.Find("greeting")
	require.NotNil(t, e)
	assert.Equal(t, []string{"hello"}, e.Examples)

	assert.Nil(t, reg.Find("nope"))
}

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	content := `{
	  "version": "2.0",
	  "entries": [
	    {"intent": "greeting", "examples": ["hello", "hi"], "responses": ["Hello!"]}
	  ]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reg, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, "2.0", reg.Version)
	require.Len(t, reg.Entries, 1)
	assert.Equal(t, []string{"hello", "hi"}, reg.Entries[0].Examples)
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
