package models

import "time"

type Chapter struct {
	Code      string  `bson:"code" json:"code"`
	Name      string  `bson:"name" json:"name"`
	Weightage float64 `bson:"weightage" json:"weightage"`
	Order     int     `bson:"order" json:"order"`
}

type Subject struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Code      string    `bson:"code" json:"code"`
	Name      string    `bson:"name" json:"name"`
	Chapters  []Chapter `bson:"chapters" json:"chapters"`
	IsActive  bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ChapterWeights returns the subject's current chapter weight map.
// Missing or non-positive weightage falls back to 1.
func (s *Subject) ChapterWeights() map[string]float64 {
	weights := make(map[string]float64, len(s.Chapters))
	for _, ch := range s.Chapters {
		w := ch.Weightage
		if w <= 0 {
			w = 1
		}
		weights[ch.Code] = w
	}
	return weights
}
