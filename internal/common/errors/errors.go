// Package errors provides the coded error taxonomy shared by the booking
// engine, the profile store, and the dialogue layer.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeMovieNotFound      ErrorCode = "MOVIE_NOT_FOUND"
	ErrCodeMovieNotSelected   ErrorCode = "MOVIE_NOT_SELECTED"
	ErrCodeShowtimeNotFound   ErrorCode = "SHOWTIME_NOT_FOUND"
	ErrCodeShowtimeNotChosen  ErrorCode = "SHOWTIME_NOT_SELECTED"
	ErrCodeSeatNotAvailable   ErrorCode = "SEAT_NOT_AVAILABLE"
	ErrCodeBookingIncomplete  ErrorCode = "BOOKING_INCOMPLETE"
	ErrCodeBookingNotFound    ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeBookingCancelled   ErrorCode = "BOOKING_ALREADY_CANCELLED"
	ErrCodeProfileReadFailed  ErrorCode = "PROFILE_READ_FAILED"
	ErrCodeProfileWriteFailed ErrorCode = "PROFILE_WRITE_FAILED"
	ErrCodeCatalogLoadFailed  ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeCatalogInvalid     ErrorCode = "CATALOG_VALIDATION_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Is lets errors.Is match two StandardErrors by code.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	return ok && t.Code == e.Code
}

// Code extracts the ErrorCode from any error, empty when it is not a StandardError.
func Code(err error) ErrorCode {
	if se, ok := err.(*StandardError); ok {
		return se.Code
	}
	return ""
}

// ==========================
// Error Constructors
// ==========================

// NewMovieNotFoundError signals that no catalog title matched the utterance.
func NewMovieNotFoundError(utterance string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMovieNotFound,
		Message:   "No movie title matched the input",
		Details:   utterance,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMovieNotSelectedError signals a showtime step attempted before a movie was chosen.
func NewMovieNotSelectedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMovieNotSelected,
		Message:   "No movie selected yet",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewShowtimeNotChosenError signals a seat step attempted before a showtime was chosen.
func NewShowtimeNotChosenError() *StandardError {
	return &StandardError{
		Code:      ErrCodeShowtimeNotChosen,
		Message:   "No showtime selected yet",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewShowtimeNotFoundError signals that a booking references an unknown showtime.
func NewShowtimeNotFoundError(showtimeID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeShowtimeNotFound,
		Message:   "Showtime not found in catalog",
		Details:   fmt.Sprintf("showtimeId: %s", showtimeID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSeatNotAvailableError signals a seat code missing from the available set.
func NewSeatNotAvailableError(seat string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSeatNotAvailable,
		Message:   "Seat is not available",
		Details:   fmt.Sprintf("seat: %s", seat),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBookingIncompleteError signals a confirm attempted before movie, showtime and seats were all set.
func NewBookingIncompleteError() *StandardError {
	return &StandardError{
		Code:      ErrCodeBookingIncomplete,
		Message:   "Booking selection is incomplete",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBookingNotFoundError signals an unknown booking id.
func NewBookingNotFoundError(bookingID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBookingNotFound,
		Message:   "Booking not found",
		Details:   fmt.Sprintf("bookingId: %s", bookingID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBookingCancelledError signals a cancel attempted on an already cancelled booking.
func NewBookingCancelledError(bookingID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBookingCancelled,
		Message:   "Booking is already cancelled",
		Details:   fmt.Sprintf("bookingId: %s", bookingID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileReadFailedError creates a retryable identity-store read error.
func NewProfileReadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileReadFailed,
		Message:   "Failed to read user profile",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileWriteFailedError creates a retryable identity-store write error.
func NewProfileWriteFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileWriteFailed,
		Message:   "Failed to persist user profile",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadFailedError creates a non-retryable catalog read error.
func NewCatalogLoadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Failed to load movie catalog",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogInvalidError creates a non-retryable catalog schema validation error.
func NewCatalogInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogInvalid,
		Message:   "Movie catalog failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
