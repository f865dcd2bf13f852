package service

import (
	"context"
	"time"

	"exam-service/internal/models"
	"exam-service/internal/repository"
)

type ReportService struct {
	Repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

func (s *ReportService) ReportQuestion(ctx context.Context, report *models.QuestionReport) error {
	report.Resolved = false
	report.CreatedAt = time.Now()
	return s.Repo.Create(ctx, report)
}

func (s *ReportService) ListUnresolved(ctx context.Context) ([]models.QuestionReport, error) {
	return s.Repo.FindUnresolved(ctx)
}

func (s *ReportService) ResolveReport(ctx context.Context, id string) error {
	return s.Repo.Resolve(ctx, id)
}
