// internal/catalog/catalog.go

// Package catalog holds the movie and showtime reference data. In a real
// deployment this would come from a database; here it is seeded in memory or
// loaded from a schema-validated JSON file.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"movie-chatbot/internal/common/errors"
)

// Catalog is the lookup surface over movies and showtimes. Movies are
// immutable; showtime seat inventories are mutated by the booking engine.
type Catalog struct {
	movies        map[string]*Movie
	movieOrder    []string
	showtimes     map[string]*ShowTime
	showtimeOrder []string
}

type catalogFile struct {
	Movies    []Movie `json:"movies"`
	Showtimes []struct {
		ID        string   `json:"id"`
		MovieID   string   `json:"movieId"`
		StartTime string   `json:"startTime"`
		Seats     []string `json:"seats"`
		Price     float64  `json:"price"`
	} `json:"showtimes"`
}

// Seed returns the built-in sample catalog.
func Seed() *Catalog {
	c := newCatalog()
	c.addMovie(&Movie{ID: "mov1", Title: "The Matrix", DurationMinutes: 150, Language: "English", Genre: "Sci-Fi"})
	c.addMovie(&Movie{ID: "mov2", Title: "Inception", DurationMinutes: 148, Language: "English", Genre: "Sci-Fi"})
	c.addMovie(&Movie{ID: "mov3", Title: "Interstellar", DurationMinutes: 169, Language: "English", Genre: "Sci-Fi"})

	c.addShowTime(&ShowTime{
		ID: "st1", MovieID: "mov1",
		Start:          todayAt(14, 30),
		AvailableSeats: []string{"A1", "A2", "B1", "B2"},
		Price:          12.99,
	})
	c.addShowTime(&ShowTime{
		ID: "st2", MovieID: "mov1",
		Start:          todayAt(18, 30),
		AvailableSeats: []string{"A1", "A2", "B1", "B2"},
		Price:          14.99,
	})
	return c
}

// Load reads and validates a catalog JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}

	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, errors.NewCatalogInvalidError(err.Error())
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, errors.NewCatalogInvalidError(strings.Join(errs, "; "))
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}

	c := newCatalog()
	for i := range file.Movies {
		m := file.Movies[i]
		c.addMovie(&m)
	}
	for _, raw := range file.Showtimes {
		if _, ok := c.movies[raw.MovieID]; !ok {
			return nil, errors.NewCatalogInvalidError(
				fmt.Sprintf("showtime %s references unknown movie %s", raw.ID, raw.MovieID))
		}
		start, err := time.Parse("15:04", raw.StartTime)
		if err != nil {
			return nil, errors.NewCatalogInvalidError(err.Error())
		}
		c.addShowTime(&ShowTime{
			ID:             raw.ID,
			MovieID:        raw.MovieID,
			Start:          todayAt(start.Hour(), start.Minute()),
			AvailableSeats: append([]string(nil), raw.Seats...),
			Price:          raw.Price,
		})
	}
	return c, nil
}

func newCatalog() *Catalog {
	return &Catalog{
		movies:    make(map[string]*Movie),
		showtimes: make(map[string]*ShowTime),
	}
}

func (c *Catalog) addMovie(m *Movie) {
	c.movies[m.ID] = m
	c.movieOrder = append(c.movieOrder, m.ID)
}

func (c *Catalog) addShowTime(st *ShowTime) {
	c.showtimes[st.ID] = st
	c.showtimeOrder = append(c.showtimeOrder, st.ID)
}

// Movies returns every movie in insertion order.
func (c *Catalog) Movies() []*Movie {
	out := make([]*Movie, 0, len(c.movieOrder))
	for _, id := range c.movieOrder {
		out = append(out, c.movies[id])
	}
	return out
}

// Movie looks a movie up by id.
func (c *Catalog) Movie(id string) (*Movie, bool) {
	m, ok := c.movies[id]
	return m, ok
}

// ShowTime looks a showtime up by id.
func (c *Catalog) ShowTime(id string) (*ShowTime, bool) {
	st, ok := c.showtimes[id]
	return st, ok
}

// ShowTimesForMovie returns the movie's showtimes in insertion order.
func (c *Catalog) ShowTimesForMovie(movieID string) []*ShowTime {
	var out []*ShowTime
	for _, id := range c.showtimeOrder {
		if st := c.showtimes[id]; st.MovieID == movieID {
			out = append(out, st)
		}
	}
	return out
}

// FindMovieInUtterance returns the first movie whose title occurs in the
// utterance, case-insensitive.
func (c *Catalog) FindMovieInUtterance(utterance string) (*Movie, bool) {
	lowered := strings.ToLower(utterance)
	for _, id := range c.movieOrder {
		m := c.movies[id]
		if strings.Contains(lowered, strings.ToLower(m.Title)) {
			return m, true
		}
	}
	return nil, false
}

func todayAt(hour, minute int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
}
