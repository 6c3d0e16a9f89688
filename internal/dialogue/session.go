// internal/dialogue/session.go
package dialogue

import (
	"time"

	"github.com/google/uuid"

	"movie-chatbot/internal/catalog"
	"movie-chatbot/internal/intent"
)

// BookingStep marks the session's progress through the ticket-purchase flow.
type BookingStep int

const (
	StepInit BookingStep = iota
	StepMovieSelected
	StepShowtimeSelected
	StepSeatsSelected
)

// BookingFlowState carries the in-progress selections. It is reset to the
// initial step once a booking is confirmed.
type BookingFlowState struct {
	SelectedMovie    *catalog.Movie
	SelectedShowTime *catalog.ShowTime
	SelectedSeats    []string
	Step             BookingStep
}

func (f *BookingFlowState) Reset() {
	*f = BookingFlowState{}
}

// ConversationTurn is one append-only history record. Reply is back-filled
// after the turn's handler completes.
type ConversationTurn struct {
	Timestamp time.Time
	Input     string
	Reply     string
	Intent    intent.Intent
}

// Session is the explicit per-conversation state passed into every turn.
// There is exactly one session per process instance and all of its mutable
// state is owned by the turn-handling call.
type Session struct {
	ID                       uuid.UUID
	UserName                 string
	AwaitingNameConfirmation bool
	Flow                     BookingFlowState
	History                  []ConversationTurn
	StartedAt                time.Time
}

// LastIntent returns the intent recorded on the most recent turn, Unknown
// before the first turn.
func (s *Session) LastIntent() intent.Intent {
	if len(s.History) == 0 {
		return intent.Unknown
	}
	return s.History[len(s.History)-1].Intent
}
