package strava

import "time"

// Connection links one customer to one Strava athlete account. Tokens are
// replaced in place on refresh; ExpiresAt is a unix timestamp in seconds.
type Connection struct {
	ID           int       `json:"id"`
	CustomerID   int       `json:"customerId"`
	AthleteID    int64     `json:"athleteId"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    int64     `json:"expiresAt"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
