package program

import "time"

// Program is a block of scheduled workouts assigned to a customer.
// A customer has at most one active program at a time.
type Program struct {
	ID         string     `json:"id"`
	CustomerID int        `json:"customerId"`
	Title      string     `json:"title"`
	Active     bool       `json:"active"`
	StartsAt   time.Time  `json:"startsAt"`
	EndsAt     *time.Time `json:"endsAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}
