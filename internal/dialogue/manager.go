// internal/dialogue/manager.go

// Package dialogue drives the per-session state machine: identity
// confirmation, the basic conversational handlers and the five-step booking
// flow.
package dialogue

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"movie-chatbot/internal/booking"
	"movie-chatbot/internal/catalog"
	"movie-chatbot/internal/common/logger"
	"movie-chatbot/internal/common/metrics"
	"movie-chatbot/internal/intent"
	"movie-chatbot/internal/profile"
)

const (
	replyTrouble       = "I'm having trouble processing your request. Could you try again?"
	replyClarify       = "I'm not sure what you mean. Could you rephrase that?"
	replyNameConfusion = "I apologize for the confusion. Would you like to tell me your name?"
)

// HandlerFunc is one dispatch arm: a pure function of (session state, raw
// text) producing the reply and any state mutation on the session.
type HandlerFunc func(s *Session, raw string) string

// Manager is the dialogue state machine. It owns no per-turn state itself;
// the session is passed explicitly into every call.
type Manager struct {
	classifier   *intent.Classifier
	store        profile.Store
	catalog      *catalog.Catalog
	engine       *booking.Engine
	handlers     map[intent.Intent]HandlerFunc
	capabilities []string
	logger       logger.Logger
}

func NewManager(classifier *intent.Classifier, store profile.Store, cat *catalog.Catalog, engine *booking.Engine, log logger.Logger) *Manager {
	m := &Manager{
		classifier: classifier,
		store:      store,
		catalog:    cat,
		engine:     engine,
		logger: log.With(map[string]interface{}{
			"component": "dialogue",
		}),
	}

	// booking handlers are layered over the basic set and take priority
	m.handlers = merge(m.basicHandlers(), m.bookingHandlers())
	m.capabilities = []string{baseCapabilities, bookingCapabilities}
	return m
}

func merge(base, overlay map[intent.Intent]HandlerFunc) map[intent.Intent]HandlerFunc {
	merged := make(map[intent.Intent]HandlerFunc, len(base)+len(overlay))
	for in, h := range base {
		merged[in] = h
	}
	for in, h := range overlay {
		merged[in] = h
	}
	return merged
}

// NewSession loads the stored identity and starts a fresh session. A failed
// read degrades to an anonymous session.
func (m *Manager) NewSession() *Session {
	name, err := m.store.Load()
	if err != nil {
		m.logger.WithError(err).Warn("could not load stored profile", nil)
		name = ""
	}

	return &Session{
		ID:                       uuid.New(),
		UserName:                 name,
		AwaitingNameConfirmation: name != "",
		StartedAt:                time.Now(),
	}
}

// WelcomeMessage is the one-shot greeting shown before the first turn.
func (m *Manager) WelcomeMessage(s *Session) string {
	if s.UserName != "" {
		return fmt.Sprintf("Am I still talking to %s?", s.UserName)
	}
	return "Hello! I'm your assistant. What's your name?"
}

// ProcessInput handles one conversation turn: classify, record, dispatch,
// back-fill the reply. A panicking handler is logged and surfaced as the
// generic trouble reply; the session always survives the turn.
func (m *Manager) ProcessInput(s *Session, raw string) (reply string) {
	metrics.TurnsProcessed.Inc()

	defer func() {
		if r := recover(); r != nil {
			metrics.TurnsRecovered.Inc()
			m.logger.Error("turn handling panicked", map[string]interface{}{
				"panic": r,
			})
			reply = replyTrouble
		}
		if n := len(s.History); n > 0 {
			s.History[n-1].Reply = reply
		}
	}()

	in := m.classifier.Classify(raw)
	s.History = append(s.History, ConversationTurn{
		Timestamp: time.Now(),
		Input:     raw,
		Intent:    in,
	})

	return m.handleIntent(s, in, raw)
}

func (m *Manager) handleIntent(s *Session, in intent.Intent, raw string) string {
	if s.AwaitingNameConfirmation {
		return m.handleNameConfirmation(s, in, raw)
	}

	if h, ok := m.handlers[in]; ok {
		return h(s, raw)
	}
	return replyClarify
}

// handleNameConfirmation resolves the one-turn identity sub-flow. Whatever
// branch is taken, the sub-state is exited this turn.
func (m *Manager) handleNameConfirmation(s *Session, in intent.Intent, raw string) string {
	s.AwaitingNameConfirmation = false

	switch in {
	case intent.Confirm:
		return fmt.Sprintf("Welcome back %s! %s", s.UserName, m.capabilitiesMessage())

	case intent.Deny:
		s.UserName = ""
		m.persistName(s)
		return replyNameConfusion

	case intent.NameSet:
		if name, ok := ExtractName(raw); ok {
			s.UserName = name
			m.persistName(s)
			return fmt.Sprintf("Nice to meet you, %s! %s", name, m.capabilitiesMessage())
		}
	}

	// unclear response: forget the stored name and ask again
	s.UserName = ""
	m.persistName(s)
	return replyNameConfusion
}

// persistName writes the identity record through the store. Failures are
// logged and counted, never surfaced to the user.
func (m *Manager) persistName(s *Session) {
	if err := m.store.Save(s.UserName); err != nil {
		metrics.ProfileSaveFailures.Inc()
		m.logger.WithError(err).Error("could not persist profile", map[string]interface{}{
			"sessionId": s.ID.String(),
		})
	}
}

func (m *Manager) capabilitiesMessage() string {
	return strings.Join(m.capabilities, "\n")
}
