// internal/booking/models.go
package booking

import "time"

// Status is the booking lifecycle state. The only transition is
// Confirmed -> Cancelled, exactly once.
type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// Booking is one confirmed ticket purchase.
type Booking struct {
	ID          string
	UserName    string
	MovieID     string
	ShowTimeID  string
	Seats       []string
	TotalAmount float64
	Status      Status
	CreatedAt   time.Time
}
