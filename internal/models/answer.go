package models

import "time"

// Answer is one submitted answer inside a result. Correctness is graded
// once at submission time and never re-derived from the question.
type Answer struct {
	QuestionID       string    `bson:"question_id" json:"question_id"`
	ChapterCode      string    `bson:"chapter_code,omitempty" json:"chapter_code,omitempty"`
	Selected         []int     `bson:"selected" json:"selected"`
	IsCorrect        bool      `bson:"is_correct" json:"is_correct"`
	TimeSpentSeconds int       `bson:"time_spent_seconds" json:"time_spent_seconds"`
	AnsweredAt       time.Time `bson:"answered_at" json:"answered_at"`
}

// Attempted reports whether the answer carries a non-empty selection.
func (a *Answer) Attempted() bool {
	return len(a.Selected) > 0
}
