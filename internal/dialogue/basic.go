// internal/dialogue/basic.go
package dialogue

import (
	"fmt"

	"movie-chatbot/internal/intent"
)

const baseCapabilities = "I'm here to help you! I can:\n" +
	"1. Remember your name and personalize our conversation\n" +
	"2. Engage in friendly chat and greetings\n" +
	"3. Answer questions about what I can do\n" +
	"Just let me know what you'd like to talk about!"

// basicHandlers covers the conversational intents: greetings, farewells,
// identity and help. NameChange deliberately has no handler so an unmatched
// rename request falls through to the clarification reply.
func (m *Manager) basicHandlers() map[intent.Intent]HandlerFunc {
	return map[intent.Intent]HandlerFunc{
		intent.Greeting: m.handleGreeting,
		intent.Farewell: m.handleFarewell,
		intent.NameSet:  m.handleNameSet,
		intent.NameGet:  m.handleNameGet,
		intent.Help:     m.handleHelp,
	}
}

func (m *Manager) handleGreeting(s *Session, raw string) string {
	if s.UserName != "" {
		return fmt.Sprintf("Hello %s! How can I help you today?", s.UserName)
	}
	return "Hello! Would you like to tell me your name?"
}

func (m *Manager) handleFarewell(s *Session, raw string) string {
	if s.UserName != "" {
		return fmt.Sprintf("Goodbye %s! Have a great day!", s.UserName)
	}
	return "Goodbye! Have a great day!"
}

func (m *Manager) handleNameSet(s *Session, raw string) string {
	name, ok := ExtractName(raw)
	if !ok {
		return "I didn't catch your name. Could you say it again?"
	}

	oldName := s.UserName
	s.UserName = name
	m.persistName(s)

	if oldName != "" {
		return fmt.Sprintf("I'll now call you %s instead of %s! %s", name, oldName, m.capabilitiesMessage())
	}
	return fmt.Sprintf("Nice to meet you, %s!", name)
}

func (m *Manager) handleNameGet(s *Session, raw string) string {
	if s.UserName != "" {
		return fmt.Sprintf("Your name is %s!", s.UserName)
	}
	return "I don't know your name yet. Would you like to tell me?"
}

func (m *Manager) handleHelp(s *Session, raw string) string {
	lastLine := "4. Getting to know you better"
	if s.UserName != "" {
		lastLine = "4. Continuing our previous conversation"
	}
	return "I can help you with:\n" +
		"1. Remembering your name and personalizing our conversation\n" +
		"2. Basic conversation and greetings\n" +
		"3. Providing information about my capabilities\n" +
		lastLine
}
