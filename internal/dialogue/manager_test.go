// internal/dialogue/manager_test.go
package dialogue

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-chatbot/internal/booking"
	"movie-chatbot/internal/catalog"
	"movie-chatbot/internal/common/logger"
	"movie-chatbot/internal/intent"
	"movie-chatbot/internal/nlp"
	"movie-chatbot/internal/nlp/wordnet"
	"movie-chatbot/internal/profile"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestManager(t *testing.T) (*Manager, profile.Store) {
	log := logger.NewTestLogger(t)
	store := profile.NewFileStore(filepath.Join(t.TempDir(), "user_data.json"), log)
	cat := catalog.Seed()

	classifier := intent.NewClassifier(
		nlp.NewNormalizer(log),
		wordnet.NewGraph(),
		intent.DefaultLibrary(),
		intent.DefaultThreshold,
		log,
	)

	return NewManager(classifier, store, cat, booking.NewEngine(cat, log), log), store
}

// ==========================
// Session Setup Tests
// ==========================

func TestManager_NewSession_Anonymous(t *testing.T) {
	m, _ := newTestManager(t)

	s := m.NewSession()
	assert.Empty(t, s.UserName)
	assert.False(t, s.AwaitingNameConfirmation)
	assert.Equal(t, "Hello! I'm your assistant. What's your name?", m.WelcomeMessage(s))
}

func TestManager_NewSession_KnownUser(t *testing.T) {
	m, store := newTestManager(t)
	require.NoError(t, store.Save("Sam"))

	s := m.NewSession()
	assert.Equal(t, "Sam", s.UserName)
	assert.True(t, s.AwaitingNameConfirmation)
	assert.Equal(t, "Am I still talking to Sam?", m.WelcomeMessage(s))
}

// ==========================
// Name Confirmation Tests
// ==========================

func TestManager_NameConfirmation(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		replyContains string
		expectedName  string
	}{
		{
			name:          "confirmed identity",
			input:         "yes",
			replyContains: "Welcome back Sam!",
			expectedName:  "Sam",
		},
		{
			name:          "denied identity clears the name",
			input:         "no",
			replyContains: "I apologize for the confusion",
			expectedName:  "",
		},
		{
			name:          "new name overrides the stored one",
			input:         "my name is Alex",
			replyContains: "Nice to meet you, Alex!",
			expectedName:  "Alex",
		},
		{
			name:          "unclear response clears the name",
			input:         "show movies",
			replyContains: "I apologize for the confusion",
			expectedName:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store := newTestManager(t)
			require.NoError(t, store.Save("Sam"))
			s := m.NewSession()

			reply := m.ProcessInput(s, tt.input)

			assert.Contains(t, reply, tt.replyContains)
			assert.False(t, s.AwaitingNameConfirmation)
			assert.Equal(t, tt.expectedName, s.UserName)

			persisted, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, persisted)
		})
	}
}

func TestManager_NameConfirmation_HappensOnlyOnce(t *testing.T) {
	m, store := newTestManager(t)
	require.NoError(t, store.Save("Sam"))
	s := m.NewSession()

	m.ProcessInput(s, "yes")

	// the next "yes" goes through normal dispatch, not the confirmation flow
	reply := m.ProcessInput(s, "yes")
	assert.Equal(t, "I'm not sure what you mean. Could you rephrase that?", reply)
}

// ==========================
// Basic Handler Tests
// ==========================

func TestManager_BasicHandlers(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.NewSession()

	assert.Equal(t, "Hello! Would you like to tell me your name?", m.ProcessInput(s, "hello"))

	reply := m.ProcessInput(s, "my name is Alex")
	assert.Equal(t, "Nice to meet you, Alex!", reply)

	assert.Equal(t, "Hello Alex! How can I help you today?", m.ProcessInput(s, "hello"))
	assert.Equal(t, "Your name is Alex!", m.ProcessInput(s, "what is my name"))

	reply = m.ProcessInput(s, "call me Riley")
	assert.Contains(t, reply, "I'll now call you Riley instead of Alex!")
	assert.Contains(t, reply, "I'm here to help you!")

	reply = m.ProcessInput(s, "bye")
	assert.Equal(t, "Goodbye Riley! Have a great day!", reply)
	assert.Equal(t, intent.Farewell, s.LastIntent())
}

func TestManager_NameGet_Unknown(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.NewSession()

	assert.Equal(t, "I don't know your name yet. Would you like to tell me?", m.ProcessInput(s, "what is my name"))
}

func TestManager_Help(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.NewSession()

	reply := m.ProcessInput(s, "help")
	assert.Contains(t, reply, "I can help you with:")
	assert.Contains(t, reply, "4. Getting to know you better")

	s.UserName = "Alex"
	reply = m.ProcessInput(s, "help")
	assert.Contains(t, reply, "4. Continuing our previous conversation")
}

// ==========================
// Booking Flow Guard Tests
// ==========================

func TestManager_BookingFlowGuards(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.NewSession()

	assert.Equal(t, "Please select a movie first.", m.ProcessInput(s, "available times"))
	assert.Equal(t, "Please select a showtime first.", m.ProcessInput(s, "seat A1"))
	assert.Equal(t, "Please complete your selection first.", m.ProcessInput(s, "confirm booking"))
	assert.Equal(t, "Please tell me your name first.", m.ProcessInput(s, "check booking"))
	assert.Equal(t, "Please provide a valid booking ID.", m.ProcessInput(s, "cancel booking"))
}

func TestManager_MovieSelect_UnknownTitle(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.NewSession()

	reply := m.ProcessInput(s, "I want to book Avatar")
	assert.Equal(t, "I couldn't find that movie. Please select from the available movies list.", reply)
	assert.Nil(t, s.Flow.SelectedMovie)
}

func TestManager_ShowTimesForMovieWithoutScreenings(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.NewSession()

	m.ProcessInput(s, "I want to book Inception")
	assert.Equal(t, "No showtimes available for this movie.", m.ProcessInput(s, "available times"))
}

func TestManager_SeatSelect_NoMatchListsAvailable(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.NewSession()

	m.ProcessInput(s, "I want to book The Matrix")
	m.ProcessInput(s, "2:30 PM")

	assert.Equal(t, "Available seats: A1, A2, B1, B2", m.ProcessInput(s, "seat C9"))
}

// ==========================
// End-to-End Conversation
// ==========================

func TestManager_FullBookingConversation(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.NewSession()

	assert.Equal(t, "Hello! Would you like to tell me your name?", m.ProcessInput(s, "Hello"))
	assert.Equal(t, "Nice to meet you, Alex!", m.ProcessInput(s, "My name is Alex"))

	reply := m.ProcessInput(s, "Show me movies")
	assert.Contains(t, reply, "Here are the available movies:")
	assert.Contains(t, reply, "- The Matrix (150 mins, English)")
	assert.Contains(t, reply, "- Inception (148 mins, English)")
	assert.Contains(t, reply, "- Interstellar (169 mins, English)")

	reply = m.ProcessInput(s, "I want to book The Matrix")
	assert.Equal(t, "You've selected The Matrix. Would you like to see available showtimes?", reply)

	reply = m.ProcessInput(s, "What showtimes are available?")
	assert.Equal(t, "Available showtimes:\n- 02:30 PM (4 seats available)\n- 06:30 PM (4 seats available)", reply)

	reply = m.ProcessInput(s, "2:30 PM")
	assert.Equal(t, "Selected showtime: 02:30 PM. Would you like to select seats?", reply)

	reply = m.ProcessInput(s, "seat A1")
	assert.Equal(t, "Selected seats: A1. Total: $12.99. Would you like to confirm your booking?", reply)

	reply = m.ProcessInput(s, "confirm booking")
	assert.Contains(t, reply, "Booking confirmed!")
	assert.Contains(t, reply, "Booking ID: BK1")
	assert.Contains(t, reply, "Movie: The Matrix")
	assert.Contains(t, reply, "Time: 02:30 PM")
	assert.Contains(t, reply, "Seats: A1")
	assert.Contains(t, reply, "Total: $12.99")

	// the flow resets after confirmation
	assert.Nil(t, s.Flow.SelectedMovie)
	assert.Equal(t, StepInit, s.Flow.Step)

	// the booked seat left the inventory
	reply = m.ProcessInput(s, "check booking")
	assert.Contains(t, reply, "Your bookings:")
	assert.Contains(t, reply, "Booking ID: BK1")
	assert.Contains(t, reply, "Status: CONFIRMED")

	reply = m.ProcessInput(s, "cancel booking BK1")
	assert.Equal(t, "Booking BK1 has been cancelled.", reply)

	reply = m.ProcessInput(s, "cancel booking BK1")
	assert.Equal(t, "This booking is already cancelled.", reply)

	// conversation history recorded every turn with its reply
	require.NotEmpty(t, s.History)
	for i, turn := range s.History {
		assert.NotEmpty(t, turn.Reply, "turn %d has no reply", i)
	}
}

func TestManager_MultiSeatTotal(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.NewSession()

	m.ProcessInput(s, "I want to book The Matrix")
	m.ProcessInput(s, "6:30 PM")

	reply := m.ProcessInput(s, "seats A1 and B2 please")
	assert.Equal(t, fmt.Sprintf("Selected seats: A1, B2. Total: $%.2f. Would you like to confirm your booking?", 2*14.99), reply)
}

// ==========================
// Resilience Tests
// ==========================

func TestManager_PanicRecovery(t *testing.T) {
	m, _ := newTestManager(t)
	m.handlers[intent.Greeting] = func(s *Session, raw string) string {
		panic("boom")
	}
	s := m.NewSession()

	reply := m.ProcessInput(s, "hello")
	assert.Equal(t, "I'm having trouble processing your request. Could you try again?", reply)

	// the turn is still recorded with the fallback reply
	require.Len(t, s.History, 1)
	assert.Equal(t, reply, s.History[0].Reply)

	// the session keeps working afterwards
	assert.True(t, strings.HasPrefix(m.ProcessInput(s, "help"), "I can help you with:"))
}

func TestManager_UnknownInputAsksToRephrase(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.NewSession()

	assert.Equal(t, "I'm not sure what you mean. Could you rephrase that?", m.ProcessInput(s, "qwerty asdf zxcv"))
}
