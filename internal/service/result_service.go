package service

import (
	"context"
	"fmt"
	"time"

	"exam-service/internal/config"
	"exam-service/internal/models"
	"exam-service/internal/scoring"
)

// SubmittedAnswer is one answer in a test submission.
type SubmittedAnswer struct {
	QuestionID       string `json:"question_id"`
	Selected         []int  `json:"selected"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

type SubmitRequest struct {
	SubjectCode     string            `json:"subject_code"`
	DurationSeconds int               `json:"duration_seconds"`
	Answers         []SubmittedAnswer `json:"answers"`
}

type ResultService struct {
	results   ResultStore
	questions QuestionStore
	subjects  SubjectStore
	reviews   *ReviewService
	cfg       config.QuizConfig
}

func NewResultService(results ResultStore, questions QuestionStore, subjects SubjectStore, reviews *ReviewService, cfg config.QuizConfig) *ResultService {
	return &ResultService{
		results:   results,
		questions: questions,
		subjects:  subjects,
		reviews:   reviews,
		cfg:       cfg,
	}
}

// Submit grades a test submission, persists the result and advances the
// review schedules for every answered question. The persisted result is
// the authoritative success signal; review scheduling is best-effort.
func (s *ResultService) Submit(ctx context.Context, userID string, req SubmitRequest) (*models.Result, error) {
	now := time.Now()

	ids := make([]string, 0, len(req.Answers))
	for _, a := range req.Answers {
		ids = append(ids, a.QuestionID)
	}
	questions, err := s.questions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load submitted questions: %w", err)
	}
	byID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	// Grade once, as a snapshot. Correctness and chapter codes are
	// frozen into the answer log here and never re-derived.
	answers := make([]models.Answer, 0, len(req.Answers))
	for _, submitted := range req.Answers {
		answer := models.Answer{
			QuestionID:       submitted.QuestionID,
			Selected:         submitted.Selected,
			TimeSpentSeconds: submitted.TimeSpentSeconds,
			AnsweredAt:       now,
		}
		if q, ok := byID[submitted.QuestionID]; ok {
			answer.ChapterCode = q.ChapterCode
			answer.IsCorrect = len(submitted.Selected) > 0 && q.IsCorrectSelection(submitted.Selected)
		}
		answers = append(answers, answer)
	}

	// Weighted scoring uses the subject's current chapter weights, which
	// may have changed since the questions were written.
	chapterWeights := map[string]float64{}
	subject, err := s.subjects.FindByCode(ctx, req.SubjectCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load subject %s: %w", req.SubjectCode, err)
	}
	if subject != nil {
		chapterWeights = subject.ChapterWeights()
	}

	summary := scoring.Score(answers, chapterWeights, s.cfg.PassPercent)

	result := &models.Result{
		UserID:          userID,
		SubjectCode:     req.SubjectCode,
		TotalQuestions:  summary.TotalQuestions,
		CorrectAnswers:  summary.CorrectAnswers,
		WrongAnswers:    summary.WrongAnswers,
		NotAttempted:    summary.NotAttempted,
		Score:           summary.Score,
		WeightedScore:   summary.WeightedScore,
		WeightedTotal:   summary.WeightedTotal,
		WeightedPercent: summary.WeightedPercent,
		Passed:          summary.Passed,
		DurationSeconds: req.DurationSeconds,
		Answers:         answers,
		CreatedAt:       now,
	}
	if err := s.results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to persist result: %w", err)
	}

	attempts := make([]Attempt, 0, len(answers))
	for _, a := range answers {
		attempts = append(attempts, Attempt{QuestionID: a.QuestionID, Correct: a.IsCorrect})
	}
	s.reviews.RecordBatch(ctx, userID, attempts, now)

	return result, nil
}

func (s *ResultService) GetResultsByUser(ctx context.Context, userID string) ([]models.Result, error) {
	return s.results.FindByUser(ctx, userID)
}
