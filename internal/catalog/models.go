// internal/catalog/models.go
package catalog

import (
	"sort"
	"strings"
	"time"

	"movie-chatbot/internal/common/errors"
)

// Movie is immutable reference data.
type Movie struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	Language        string `json:"language"`
	Genre           string `json:"genre"`
}

// ShowTime carries the mutable seat inventory for one screening. Seats leave
// the available set on booking confirmation and come back, sorted, on
// cancellation.
type ShowTime struct {
	ID             string
	MovieID        string
	Start          time.Time
	AvailableSeats []string
	Price          float64
}

// TimeLabel renders the start time on the 12-hour clock, e.g. "02:30 PM".
func (st *ShowTime) TimeLabel() string {
	return st.Start.Format("03:04 PM")
}

// MatchesUtterance reports whether the utterance names this showtime. Both
// the zero-padded and the unpadded hour render are accepted, case-insensitive.
func (st *ShowTime) MatchesUtterance(utterance string) bool {
	lowered := strings.ToLower(utterance)
	label := strings.ToLower(st.TimeLabel())
	if strings.Contains(lowered, label) {
		return true
	}
	unpadded := strings.TrimPrefix(label, "0")
	return strings.Contains(lowered, unpadded)
}

// MatchSeats returns every available seat code that appears in the utterance,
// in the iteration order of the available-seat sequence.
func (st *ShowTime) MatchSeats(utterance string) []string {
	lowered := strings.ToLower(utterance)
	var matched []string
	for _, seat := range st.AvailableSeats {
		if strings.Contains(lowered, strings.ToLower(seat)) {
			matched = append(matched, seat)
		}
	}
	return matched
}

// TakeSeats removes the given seats from the available set. The whole call
// fails without mutation if any seat is not available.
func (st *ShowTime) TakeSeats(seats []string) error {
	available := make(map[string]struct{}, len(st.AvailableSeats))
	for _, s := range st.AvailableSeats {
		available[s] = struct{}{}
	}
	for _, s := range seats {
		if _, ok := available[s]; !ok {
			return errors.NewSeatNotAvailableError(s)
		}
	}

	taken := make(map[string]struct{}, len(seats))
	for _, s := range seats {
		taken[s] = struct{}{}
	}
	remaining := st.AvailableSeats[:0]
	for _, s := range st.AvailableSeats {
		if _, ok := taken[s]; !ok {
			remaining = append(remaining, s)
		}
	}
	st.AvailableSeats = remaining
	return nil
}

// ReleaseSeats returns seats to the available set and keeps it sorted.
func (st *ShowTime) ReleaseSeats(seats []string) {
	st.AvailableSeats = append(st.AvailableSeats, seats...)
	sort.Strings(st.AvailableSeats)
}
