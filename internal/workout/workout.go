package workout

import "time"

// Workout is a single scheduled session within a program. DatePublished is the
// day the workout is scheduled for, so finished activities are matched against
// it by calendar date.
type Workout struct {
	ID            string    `json:"id"`
	ProgramID     string    `json:"programId"`
	Title         string    `json:"title"`
	Running       bool      `json:"running"`
	Published     bool      `json:"published"`
	DatePublished time.Time `json:"datePublished"`
	CreatedAt     time.Time `json:"createdAt"`
}
