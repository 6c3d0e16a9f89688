// internal/dialogue/booking.go
package dialogue

import (
	"fmt"
	"strings"

	"movie-chatbot/internal/booking"
	"movie-chatbot/internal/common/errors"
	"movie-chatbot/internal/intent"
)

const bookingCapabilities = "I can also help you:\n" +
	"1. Search for available movies\n" +
	"2. Book movie tickets\n" +
	"3. Select showtimes and seats\n" +
	"4. Check your booking status\n" +
	"5. Cancel bookings"

// bookingHandlers covers the ticket-purchase flow. It is merged over the
// basic set, so a booking intent always wins the dispatch.
func (m *Manager) bookingHandlers() map[intent.Intent]HandlerFunc {
	return map[intent.Intent]HandlerFunc{
		intent.MovieSearch:    m.handleMovieSearch,
		intent.MovieSelect:    m.handleMovieSelect,
		intent.ShowTimeSelect: m.handleShowTimeSelect,
		intent.SeatSelect:     m.handleSeatSelect,
		intent.BookingConfirm: m.handleBookingConfirm,
		intent.BookingCancel:  m.handleBookingCancel,
		intent.BookingStatus:  m.handleBookingStatus,
	}
}

func (m *Manager) handleMovieSearch(s *Session, raw string) string {
	var lines []string
	for _, movie := range m.catalog.Movies() {
		lines = append(lines, fmt.Sprintf("- %s (%d mins, %s)", movie.Title, movie.DurationMinutes, movie.Language))
	}
	return "Here are the available movies:\n" + strings.Join(lines, "\n")
}

func (m *Manager) handleMovieSelect(s *Session, raw string) string {
	movie, ok := m.catalog.FindMovieInUtterance(raw)
	if !ok {
		return "I couldn't find that movie. Please select from the available movies list."
	}

	s.Flow.SelectedMovie = movie
	s.Flow.Step = StepMovieSelected
	return fmt.Sprintf("You've selected %s. Would you like to see available showtimes?", movie.Title)
}

func (m *Manager) handleShowTimeSelect(s *Session, raw string) string {
	if s.Flow.SelectedMovie == nil {
		return "Please select a movie first."
	}

	showtimes := m.catalog.ShowTimesForMovie(s.Flow.SelectedMovie.ID)
	if len(showtimes) == 0 {
		return "No showtimes available for this movie."
	}

	for _, st := range showtimes {
		if st.MatchesUtterance(raw) {
			s.Flow.SelectedShowTime = st
			s.Flow.Step = StepShowtimeSelected
			return fmt.Sprintf("Selected showtime: %s. Would you like to select seats?", st.TimeLabel())
		}
	}

	var lines []string
	for _, st := range showtimes {
		lines = append(lines, fmt.Sprintf("- %s (%d seats available)", st.TimeLabel(), len(st.AvailableSeats)))
	}
	return "Available showtimes:\n" + strings.Join(lines, "\n")
}

func (m *Manager) handleSeatSelect(s *Session, raw string) string {
	if s.Flow.SelectedShowTime == nil {
		return "Please select a showtime first."
	}

	seats := s.Flow.SelectedShowTime.MatchSeats(raw)
	if len(seats) > 0 {
		s.Flow.SelectedSeats = seats
		s.Flow.Step = StepSeatsSelected
		total := float64(len(seats)) * s.Flow.SelectedShowTime.Price
		return fmt.Sprintf("Selected seats: %s. Total: $%.2f. Would you like to confirm your booking?",
			strings.Join(seats, ", "), total)
	}

	return "Available seats: " + strings.Join(s.Flow.SelectedShowTime.AvailableSeats, ", ")
}

func (m *Manager) handleBookingConfirm(s *Session, raw string) string {
	b, err := m.engine.Confirm(m.bookingUser(s), s.Flow.SelectedMovie, s.Flow.SelectedShowTime, s.Flow.SelectedSeats)
	if err != nil {
		if errors.Code(err) != errors.ErrCodeBookingIncomplete {
			m.logger.WithError(err).Warn("booking confirmation failed", nil)
		}
		return "Please complete your selection first."
	}

	movie := s.Flow.SelectedMovie
	st := s.Flow.SelectedShowTime
	s.Flow.Reset()

	return fmt.Sprintf("Booking confirmed!\n"+
		"Booking ID: %s\n"+
		"Movie: %s\n"+
		"Time: %s\n"+
		"Seats: %s\n"+
		"Total: $%.2f",
		b.ID, movie.Title, st.TimeLabel(), strings.Join(b.Seats, ", "), b.TotalAmount)
}

func (m *Manager) handleBookingCancel(s *Session, raw string) string {
	id, ok := booking.FindIDInUtterance(raw)
	if !ok {
		return "Please provide a valid booking ID."
	}

	if _, err := m.engine.Cancel(id); err != nil {
		if errors.Code(err) == errors.ErrCodeBookingCancelled {
			return "This booking is already cancelled."
		}
		return "Please provide a valid booking ID."
	}
	return fmt.Sprintf("Booking %s has been cancelled.", id)
}

func (m *Manager) handleBookingStatus(s *Session, raw string) string {
	if s.UserName == "" {
		return "Please tell me your name first."
	}

	bookings := m.engine.ListByUser(s.UserName)
	if len(bookings) == 0 {
		return "You don't have any bookings."
	}

	var blocks []string
	for _, b := range bookings {
		movie, _ := m.catalog.Movie(b.MovieID)
		st, _ := m.catalog.ShowTime(b.ShowTimeID)
		blocks = append(blocks, fmt.Sprintf("Booking ID: %s\n"+
			"Movie: %s\n"+
			"Time: %s\n"+
			"Seats: %s\n"+
			"Status: %s\n"+
			"Total: $%.2f\n",
			b.ID, movie.Title, st.TimeLabel(), strings.Join(b.Seats, ", "), b.Status, b.TotalAmount))
	}
	return "Your bookings:\n" + strings.Join(blocks, "\n")
}

func (m *Manager) bookingUser(s *Session) string {
	if s.UserName == "" {
		return "Guest"
	}
	return s.UserName
}
