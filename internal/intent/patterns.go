// internal/intent/patterns.go
package intent

import "movie-chatbot/pkg/patterns"

// BaseRegistry returns the conversational pattern set: identity, greetings,
// help and the confirmation vocabulary.
func BaseRegistry() *patterns.PatternRegistry {
	return &patterns.PatternRegistry{
		Version: "1.0",
		Entries: []patterns.Entry{
			{
				Intent:   Greeting.String(),
				Examples: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"},
				Responses: []string{
					"Hello! How can I help you today?",
					"Hi there! What can I do for you?",
				},
			},
			{
				Intent:   Farewell.String(),
				Examples: []string{"bye", "goodbye", "see you", "farewell", "quit", "exit"},
				Responses: []string{
					"Goodbye! Have a great day!",
					"Bye! Come back if you need anything else.",
				},
			},
			{
				Intent:   NameSet.String(),
				Examples: []string{"my name is", "call me", "i am called", "i'm", "name's", "{name}"},
				Responses: []string{
					"Nice to meet you, {name}!",
					"Hello {name}, pleasure to meet you!",
				},
			},
			{
				Intent:    NameGet.String(),
				Examples:  []string{"what is my name", "who am i", "do you know my name"},
				Responses: []string{"Your name is {name}!", "You're {name}!"},
			},
			{
				Intent:    NameChange.String(),
				Examples:  []string{"change my name", "call me something else", "i want a different name"},
				Responses: []string{"I'll now call you {name} instead of {old_name}!"},
			},
			{
				Intent:   Help.String(),
				Examples: []string{"help", "what can you do", "how do you work"},
			},
			{
				Intent:    Confirm.String(),
				Examples:  []string{"yes", "yeah", "yep", "correct", "that's right", "that is me", "still me", "it's me"},
				Responses: []string{"Welcome back! How can I help you today?"},
			},
			{
				Intent:    Deny.String(),
				Examples:  []string{"no", "nope", "not me", "different person", "someone else", "wrong person"},
				Responses: []string{"Oh, I apologize! Would you like to tell me your name?"},
			},
		},
	}
}

// BookingRegistry returns the movie-booking pattern set layered on top of the
// base set by DefaultLibrary.
func BookingRegistry() *patterns.PatternRegistry {
	return &patterns.PatternRegistry{
		Version: "1.0",
		Entries: []patterns.Entry{
			{
				Intent:    MovieSearch.String(),
				Examples:  []string{"show movies", "what movies", "available movies", "movie list", "find movie"},
				Responses: []string{"Here are the available movies:\n{movies_list}"},
			},
			{
				Intent:    MovieSelect.String(),
				Examples:  []string{"want to book", "book the", "want to watch", "select movie", "choose movie"},
				Responses: []string{"You've selected {movie_title}. Would you like to see available showtimes?"},
			},
			{
				Intent:    ShowTimeSelect.String(),
				Examples:  []string{"show times", "available times", "when", "what time", "pm", "am"},
				Responses: []string{"Here are the available showtimes for {movie_title}:\n{showtimes_list}"},
			},
			{
				Intent:    SeatSelect.String(),
				Examples:  []string{"select seat", "choose seat", "book seat", "seat number"},
				Responses: []string{"Available seats for your selected show:\n{seats_list}"},
			},
			{
				Intent:    BookingConfirm.String(),
				Examples:  []string{"confirm booking", "book tickets", "proceed", "pay"},
				Responses: []string{"Booking confirmed! Your booking ID is {booking_id}"},
			},
			{
				Intent:    BookingCancel.String(),
				Examples:  []string{"cancel booking", "cancel tickets", "cancel reservation"},
				Responses: []string{"Your booking has been cancelled."},
			},
			{
				Intent:    BookingStatus.String(),
				Examples:  []string{"booking status", "my booking", "check booking"},
				Responses: []string{"Your booking details:\n{booking_details}"},
			},
		},
	}
}

// Library resolves a pattern registry against the canonical intent order so
// the classifier can iterate deterministically.
type Library struct {
	examples map[Intent][]string
}

// NewLibrary builds a Library from a registry. Entries for unknown intent
// names are dropped.
func NewLibrary(reg *patterns.PatternRegistry) *Library {
	lib := &Library{examples: make(map[Intent][]string)}
	for _, e := range reg.Entries {
		in := FromName(e.Intent)
		if in == Unknown {
			continue
		}
		lib.examples[in] = e.Examples
	}
	return lib
}

// DefaultLibrary is the booking-aware configuration: the booking set layered
// over the base set, booking entries taking priority.
func DefaultLibrary() *Library {
	return NewLibrary(BaseRegistry().Merge(BookingRegistry()))
}

// Examples returns the ordered example phrases registered for an intent.
func (l *Library) Examples(in Intent) []string {
	return l.examples[in]
}
