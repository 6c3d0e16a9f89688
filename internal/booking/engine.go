// internal/booking/engine.go

// Package booking owns the booking records and the seat-inventory invariant:
// a seat removed from a showtime's available set on confirmation only comes
// back through an explicit cancellation of that same booking.
package booking

import (
	"fmt"
	"strings"
	"time"

	"movie-chatbot/internal/catalog"
	"movie-chatbot/internal/common/errors"
	"movie-chatbot/internal/common/logger"
	"movie-chatbot/internal/common/metrics"
)

// Engine creates and cancels bookings against the catalog's seat inventory.
// Ids are "BK" plus a monotonically increasing sequence that is never reused,
// even after cancellation.
type Engine struct {
	catalog *catalog.Catalog
	logger  logger.Logger

	bookings map[string]*Booking
	order    []string
	sequence int
}

func NewEngine(cat *catalog.Catalog, log logger.Logger) *Engine {
	return &Engine{
		catalog: cat,
		logger: log.With(map[string]interface{}{
			"component": "booking-engine",
		}),
		bookings: make(map[string]*Booking),
	}
}

// Confirm creates a CONFIRMED booking and removes its seats from the
// showtime's available set. Missing movie, showtime or seats fail with
// BOOKING_INCOMPLETE and mutate nothing.
func (e *Engine) Confirm(userName string, movie *catalog.Movie, st *catalog.ShowTime, seats []string) (*Booking, error) {
	if movie == nil || st == nil || len(seats) == 0 {
		return nil, errors.NewBookingIncompleteError()
	}

	if err := st.TakeSeats(seats); err != nil {
		return nil, err
	}

	e.sequence++
	b := &Booking{
		ID:          fmt.Sprintf("BK%d", e.sequence),
		UserName:    userName,
		MovieID:     movie.ID,
		ShowTimeID:  st.ID,
		Seats:       append([]string(nil), seats...),
		TotalAmount: float64(len(seats)) * st.Price,
		Status:      StatusConfirmed,
		CreatedAt:   time.Now(),
	}
	e.bookings[b.ID] = b
	e.order = append(e.order, b.ID)

	metrics.BookingsConfirmed.Inc()
	e.logger.Info("booking confirmed", map[string]interface{}{
		"bookingId": b.ID,
		"showtime":  st.ID,
		"seats":     b.Seats,
	})
	return b, nil
}

// Cancel flips a booking to CANCELLED and returns its seats to the showtime's
// available set, which is re-sorted. A second cancel fails with
// BOOKING_ALREADY_CANCELLED and mutates nothing.
func (e *Engine) Cancel(bookingID string) (*Booking, error) {
	bookingID = strings.ToUpper(bookingID)
	b, ok := e.bookings[bookingID]
	if !ok {
		return nil, errors.NewBookingNotFoundError(bookingID)
	}
	if b.Status == StatusCancelled {
		return nil, errors.NewBookingCancelledError(bookingID)
	}

	st, ok := e.catalog.ShowTime(b.ShowTimeID)
	if !ok {
		return nil, errors.NewShowtimeNotFoundError(b.ShowTimeID)
	}

	st.ReleaseSeats(b.Seats)
	b.Status = StatusCancelled

	metrics.BookingsCancelled.Inc()
	e.logger.Info("booking cancelled", map[string]interface{}{
		"bookingId": b.ID,
		"showtime":  st.ID,
	})
	return b, nil
}

// Get looks a booking up by id, case-insensitive.
func (e *Engine) Get(bookingID string) (*Booking, bool) {
	b, ok := e.bookings[strings.ToUpper(bookingID)]
	return b, ok
}

// ListByUser returns the user's bookings in creation order.
func (e *Engine) ListByUser(userName string) []*Booking {
	var out []*Booking
	for _, id := range e.order {
		if b := e.bookings[id]; b.UserName == userName {
			out = append(out, b)
		}
	}
	return out
}

// FindIDInUtterance extracts the first whitespace token starting with "BK"
// (case-insensitive), uppercased.
func FindIDInUtterance(utterance string) (string, bool) {
	for _, word := range strings.Fields(utterance) {
		if len(word) >= 2 && strings.EqualFold(word[:2], "BK") {
			return strings.ToUpper(word), true
		}
	}
	return "", false
}
