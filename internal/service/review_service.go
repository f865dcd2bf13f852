package service

import (
	"context"
	"log"
	"time"

	"exam-service/internal/models"
	"exam-service/internal/review"
)

// Attempt is one graded answer fed to the review scheduler.
type Attempt struct {
	QuestionID string
	Correct    bool
}

type ReviewService struct {
	schedules ReviewStore
	questions QuestionStore
	cfg       review.Config
}

func NewReviewService(schedules ReviewStore, questions QuestionStore, cfg review.Config) *ReviewService {
	return &ReviewService{
		schedules: schedules,
		questions: questions,
		cfg:       cfg,
	}
}

// RecordAttempt advances the (user, question) review schedule after one
// answer, creating the record on the first attempt.
func (s *ReviewService) RecordAttempt(ctx context.Context, userID, questionID string, correct bool, now time.Time) error {
	current, err := s.schedules.Find(ctx, userID, questionID)
	if err != nil {
		return err
	}
	next := review.Apply(current, userID, questionID, correct, now, s.cfg)
	return s.schedules.Upsert(ctx, &next)
}

// RecordBatch applies one submission's attempts to the review schedules.
// Duplicate question ids keep only their first outcome. Failed writes
// are logged and skipped; scheduling is a best-effort side effect and
// never fails the submission.
func (s *ReviewService) RecordBatch(ctx context.Context, userID string, attempts []Attempt, now time.Time) {
	seen := make(map[string]bool, len(attempts))
	for _, attempt := range attempts {
		if attempt.QuestionID == "" || seen[attempt.QuestionID] {
			continue
		}
		seen[attempt.QuestionID] = true
		if err := s.RecordAttempt(ctx, userID, attempt.QuestionID, attempt.Correct, now); err != nil {
			log.Printf("review schedule update failed for user=%s question=%s: %v", userID, attempt.QuestionID, err)
		}
	}
}

// DueQuestions returns up to limit previously-attempted questions whose
// review date has passed, oldest overdue first.
func (s *ReviewService) DueQuestions(ctx context.Context, userID string, limit int64, now time.Time) ([]models.Question, error) {
	schedules, err := s.schedules.FindDue(ctx, userID, now, limit)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return []models.Question{}, nil
	}

	ids := make([]string, len(schedules))
	for i, schedule := range schedules {
		ids[i] = schedule.QuestionID
	}
	questions, err := s.questions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Preserve the oldest-due-first order from the schedule query.
	byID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]models.Question, 0, len(schedules))
	for _, schedule := range schedules {
		if q, ok := byID[schedule.QuestionID]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered, nil
}
