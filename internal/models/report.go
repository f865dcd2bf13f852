package models

import "time"

type QuestionReport struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	QuestionID string    `bson:"question_id" json:"question_id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Reason     string    `bson:"reason" json:"reason"`
	Resolved   bool      `bson:"resolved" json:"resolved"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	ResolvedAt time.Time `bson:"resolved_at,omitempty" json:"resolved_at,omitempty"`
}
