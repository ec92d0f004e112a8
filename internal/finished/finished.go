package finished

import "time"

type Source string

const (
	SourceManual Source = "manual"
	SourceStrava Source = "strava"
)

// Workout is a completed training session, either logged manually by the
// customer or imported from Strava. ExternalID carries the Strava activity id
// for imported records and is unique, which makes imports idempotent.
type Workout struct {
	ID                int       `json:"id"`
	CustomerID        int       `json:"customerId"`
	WorkoutID         *string   `json:"workoutId,omitempty"`
	ExternalID        *string   `json:"externalId,omitempty"`
	Source            Source    `json:"source"`
	Title             string    `json:"title"`
	DistanceInMeters  float64   `json:"distanceInMeters"`
	DurationInSeconds int       `json:"durationInSeconds"`
	PaceInSeconds     *float64  `json:"paceInSeconds,omitempty"`
	ExecutionDay      time.Time `json:"executionDay"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Volume is the aggregate of finished workouts over a period.
type Volume struct {
	Workouts          int     `json:"workouts"`
	DistanceInMeters  float64 `json:"distanceInMeters"`
	DurationInSeconds int     `json:"durationInSeconds"`
}
