package service

import (
	"context"

	"exam-service/internal/models"
	"exam-service/internal/repository"
)

type SubjectService struct {
	Repo *repository.SubjectRepository
}

func NewSubjectService(repo *repository.SubjectRepository) *SubjectService {
	return &SubjectService{Repo: repo}
}

func (s *SubjectService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.Repo.FindActive(ctx)
}

func (s *SubjectService) GetSubject(ctx context.Context, code string) (*models.Subject, error) {
	return s.Repo.FindByCode(ctx, code)
}

func (s *SubjectService) CreateSubject(ctx context.Context, subject *models.Subject) error {
	return s.Repo.Create(ctx, subject)
}

func (s *SubjectService) UpdateSubject(ctx context.Context, code string, update map[string]any) error {
	return s.Repo.Update(ctx, code, update)
}
