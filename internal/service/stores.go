package service

import (
	"context"
	"time"

	"exam-service/internal/models"
	"exam-service/internal/repository"
)

// Store interfaces over the mongo repositories, so composition, grading
// and scheduling can be tested against in-memory fakes.

type QuestionStore interface {
	Find(ctx context.Context, f repository.QuestionFilter, limit, offset int64) ([]models.Question, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Question, error)
	CountByChapter(ctx context.Context, f repository.QuestionFilter, chapterCodes []string) (map[string]int, error)
	CountByDifficulty(ctx context.Context, f repository.QuestionFilter) (map[string]int, error)
}

type SubjectStore interface {
	FindByCode(ctx context.Context, code string) (*models.Subject, error)
}

type ReportStore interface {
	FindUnresolvedQuestionIDs(ctx context.Context) ([]string, error)
}

type ReviewStore interface {
	Find(ctx context.Context, userID, questionID string) (*models.ReviewSchedule, error)
	Upsert(ctx context.Context, schedule *models.ReviewSchedule) error
	FindDue(ctx context.Context, userID string, now time.Time, limit int64) ([]models.ReviewSchedule, error)
}

type ResultStore interface {
	Create(ctx context.Context, result *models.Result) error
	FindByUser(ctx context.Context, userID string) ([]models.Result, error)
}
