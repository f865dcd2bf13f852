package review

import (
	"time"

	"exam-service/internal/models"
)

// Config holds the spaced-repetition constants. SM-2 style: the ease
// factor scales interval growth on success and shrinks on failure,
// bounded to [MinEase, MaxEase].
type Config struct {
	MinEase         float64
	MaxEase         float64
	StartEase       float64
	MinIntervalDays int
}

// DefaultConfig returns the standard SM-2-style constants.
func DefaultConfig() Config {
	return Config{
		MinEase:         1.3,
		MaxEase:         2.8,
		StartEase:       2.5,
		MinIntervalDays: 1,
	}
}

const (
	easeGainOnSuccess  = 0.05
	easeLossOnFailure  = 0.2
	secondIntervalDays = 6
)

// Apply advances a review schedule after one attempt. A nil schedule
// means the user has never seen the question; a fresh record is started.
// Correct answers grow the interval multiplicatively by the ease factor;
// incorrect answers reset the repetition count and collapse the interval
// to the minimum floor, however mature the record was. The returned
// due date is always after now.
func Apply(schedule *models.ReviewSchedule, userID, questionID string, correct bool, now time.Time, cfg Config) models.ReviewSchedule {
	next := models.ReviewSchedule{
		UserID:     userID,
		QuestionID: questionID,
	}
	if schedule != nil {
		next = *schedule
	} else {
		next.EaseFactor = cfg.StartEase
	}

	if correct {
		next.Repetitions++
		switch {
		case next.Repetitions == 1:
			next.IntervalDays = cfg.MinIntervalDays
		case next.Repetitions == 2:
			next.IntervalDays = secondIntervalDays
		default:
			next.IntervalDays = int(float64(next.IntervalDays)*next.EaseFactor + 0.5)
		}
		if next.IntervalDays < cfg.MinIntervalDays {
			next.IntervalDays = cfg.MinIntervalDays
		}
		next.EaseFactor += easeGainOnSuccess
		if next.EaseFactor > cfg.MaxEase {
			next.EaseFactor = cfg.MaxEase
		}
	} else {
		next.Repetitions = 0
		next.IntervalDays = cfg.MinIntervalDays
		next.EaseFactor -= easeLossOnFailure
		if next.EaseFactor < cfg.MinEase {
			next.EaseFactor = cfg.MinEase
		}
	}

	next.LastReviewed = now
	next.DueDate = now.AddDate(0, 0, next.IntervalDays)

	return next
}
