package model

import "time"

// StepSample is one day's step total for a user, as reported by Google Fit.
// Day is "YYYY-MM-DD" in the user's local calendar.
type StepSample struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"user_id"`
	Day        string    `db:"day" json:"day"`
	Steps      int       `db:"steps" json:"steps"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
}
