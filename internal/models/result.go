package models

import "time"

// Result is the persisted record of one test submission. Created once,
// never mutated.
type Result struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	SubjectCode     string    `bson:"subject_code" json:"subject_code"`
	TotalQuestions  int       `bson:"total_questions" json:"total_questions"`
	CorrectAnswers  int       `bson:"correct_answers" json:"correct_answers"`
	WrongAnswers    int       `bson:"wrong_answers" json:"wrong_answers"`
	NotAttempted    int       `bson:"not_attempted" json:"not_attempted"`
	Score           int       `bson:"score" json:"score"`
	WeightedScore   float64   `bson:"weighted_score" json:"weighted_score"`
	WeightedTotal   float64   `bson:"weighted_total" json:"weighted_total"`
	WeightedPercent int       `bson:"weighted_percent" json:"weighted_percent"`
	Passed          bool      `bson:"passed" json:"passed"`
	DurationSeconds int       `bson:"duration_seconds" json:"duration_seconds"`
	Answers         []Answer  `bson:"answers" json:"answers"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
