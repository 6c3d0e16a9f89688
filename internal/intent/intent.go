// internal/intent/intent.go

// Package intent classifies raw utterances into the closed intent set that
// drives the dialogue manager.
package intent

// Intent is the closed category a user utterance is classified into. The
// declaration order is the canonical order used for tie-breaking; it is never
// extended at runtime.
type Intent int

const (
	Greeting Intent = iota
	Farewell
	NameSet
	NameGet
	NameChange
	Help
	Confirm
	Deny
	Unknown

	// movie booking intents
	MovieSearch
	MovieSelect
	ShowTimeSelect
	SeatSelect
	BookingConfirm
	BookingCancel
	BookingStatus
)

var names = map[Intent]string{
	Greeting:       "greeting",
	Farewell:       "farewell",
	NameSet:        "name_set",
	NameGet:        "name_get",
	NameChange:     "name_change",
	Help:           "help",
	Confirm:        "confirm",
	Deny:           "deny",
	Unknown:        "unknown",
	MovieSearch:    "movie_search",
	MovieSelect:    "movie_select",
	ShowTimeSelect: "show_time_select",
	SeatSelect:     "seat_select",
	BookingConfirm: "booking_confirm",
	BookingCancel:  "booking_cancel",
	BookingStatus:  "booking_status",
}

func (i Intent) String() string {
	if name, ok := names[i]; ok {
		return name
	}
	return "unknown"
}

// All returns every intent in canonical order, Unknown included.
func All() []Intent {
	return []Intent{
		Greeting, Farewell, NameSet, NameGet, NameChange, Help, Confirm, Deny,
		Unknown,
		MovieSearch, MovieSelect, ShowTimeSelect, SeatSelect,
		BookingConfirm, BookingCancel, BookingStatus,
	}
}

// FromName resolves an intent by its registry name; Unknown for anything
// unrecognized.
func FromName(name string) Intent {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return Unknown
}
