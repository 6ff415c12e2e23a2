package booking

import "errors"

// ErrNotFound is returned when a booking ID does not exist.
var ErrNotFound = errors.New("booking not found")

// Booking is a client-shaped record. The backend assigns the "id" key
// and otherwise stores whatever fields the frontend sends (child,
// tutor, course, date, meetLink, ...). No validation is performed.
type Booking map[string]any

// ID returns the booking's assigned identifier.
func (b Booking) ID() string {
	id, _ := b["id"].(string)
	return id
}

// Store defines booking persistence. The process-local implementation
// is the only one today; the interface exists so routing never has to
// change when durable storage is added.
type Store interface {
	List() []Booking
	Create(fields map[string]any) Booking
	Update(id string, fields map[string]any) (Booking, error)
	Delete(id string)
}
