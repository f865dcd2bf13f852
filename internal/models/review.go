package models

import "time"

// ReviewSchedule is the spaced-repetition state for one (user, question)
// pair. Created on the first attempt, updated on every attempt after.
// The learning stage is implicit in Repetitions and IntervalDays.
type ReviewSchedule struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	QuestionID   string    `bson:"question_id" json:"question_id"`
	IntervalDays int       `bson:"interval_days" json:"interval_days"`
	EaseFactor   float64   `bson:"ease_factor" json:"ease_factor"`
	Repetitions  int       `bson:"repetitions" json:"repetitions"`
	DueDate      time.Time `bson:"due_date" json:"due_date"`
	LastReviewed time.Time `bson:"last_reviewed" json:"last_reviewed"`
}
