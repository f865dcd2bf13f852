package service

import (
	"context"
	"fmt"

	"exam-service/internal/allocation"
	"exam-service/internal/config"
	"exam-service/internal/models"
	"exam-service/internal/repository"
)

// FullBookRequest asks for a test spread across a subject's chapters in
// proportion to their weightage.
type FullBookRequest struct {
	SubjectCode     string `json:"subject_code"`
	TotalQuestions  int    `json:"total_questions"`
	Shuffle         bool   `json:"shuffle"`
	IncludeReported bool   `json:"include_reported"`
}

// CustomRequest asks for a test split by difficulty percentages,
// optionally restricted to a chapter subset.
type CustomRequest struct {
	SubjectCode     string   `json:"subject_code"`
	ChapterCodes    []string `json:"chapter_codes,omitempty"`
	TotalQuestions  int      `json:"total_questions"`
	EasyPercent     float64  `json:"easy_percent"`
	MediumPercent   float64  `json:"medium_percent"`
	HardPercent     float64  `json:"hard_percent"`
	Shuffle         bool     `json:"shuffle"`
	IncludeReported bool     `json:"include_reported"`
}

// ComposedQuiz is a composed question list. Delivered may be less than
// Requested when the bank cannot fill the distribution; callers must not
// assume the two are equal.
type ComposedQuiz struct {
	SubjectCode string            `json:"subject_code"`
	Requested   int               `json:"requested"`
	Delivered   int               `json:"delivered"`
	Allocation  map[string]int    `json:"allocation"`
	Questions   []models.Question `json:"questions"`
}

type QuizService struct {
	questions QuestionStore
	subjects  SubjectStore
	reports   ReportStore
	sampler   *allocation.Sampler
	cfg       config.QuizConfig
}

func NewQuizService(questions QuestionStore, subjects SubjectStore, reports ReportStore, sampler *allocation.Sampler, cfg config.QuizConfig) *QuizService {
	return &QuizService{
		questions: questions,
		subjects:  subjects,
		reports:   reports,
		sampler:   sampler,
		cfg:       cfg,
	}
}

// ComposeFullBook builds a chapter-weighted test over the whole subject.
// Chapters that cannot fill their weighted share give their shortfall to
// chapters with spare inventory. Subjects without usable chapters fall
// back to a flat un-chaptered pull.
func (s *QuizService) ComposeFullBook(ctx context.Context, req FullBookRequest) (*ComposedQuiz, error) {
	quiz := &ComposedQuiz{
		SubjectCode: req.SubjectCode,
		Requested:   req.TotalQuestions,
		Allocation:  map[string]int{},
		Questions:   []models.Question{},
	}
	if req.TotalQuestions <= 0 {
		return quiz, nil
	}

	excludeIDs, err := s.reportedExclusions(ctx, req.IncludeReported)
	if err != nil {
		return nil, err
	}

	subject, err := s.subjects.FindByCode(ctx, req.SubjectCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load subject %s: %w", req.SubjectCode, err)
	}
	if subject == nil {
		return quiz, nil
	}

	baseFilter := repository.QuestionFilter{
		SubjectCode: req.SubjectCode,
		ExcludeIDs:  excludeIDs,
	}

	chapterCodes := make([]string, 0, len(subject.Chapters))
	for _, ch := range subject.Chapters {
		chapterCodes = append(chapterCodes, ch.Code)
	}

	var buckets []allocation.Bucket
	available := map[string]int{}
	if len(chapterCodes) > 0 {
		available, err = s.questions.CountByChapter(ctx, baseFilter, chapterCodes)
		if err != nil {
			return nil, fmt.Errorf("failed to count chapter inventory: %w", err)
		}
		for _, ch := range subject.Chapters {
			if available[ch.Code] == 0 {
				continue
			}
			weight := ch.Weightage
			if weight <= 0 {
				weight = 1
			}
			buckets = append(buckets, allocation.Bucket{Key: ch.Code, Weight: weight})
		}
	}

	if len(buckets) == 0 {
		// No chaptered inventory: flat paged pull from the subject pool.
		pool, err := s.questions.Find(ctx, baseFilter, int64(req.TotalQuestions), 0)
		if err != nil {
			return nil, fmt.Errorf("failed to load subject pool: %w", err)
		}
		quiz.Questions = pool
		quiz.Delivered = len(pool)
		if req.Shuffle {
			s.sampler.Shuffle(quiz.Questions)
		}
		return quiz, nil
	}

	desired := allocation.Allocate(req.TotalQuestions, buckets)
	final := allocation.Reconcile(desired, available, buckets)
	quiz.Allocation = final

	for _, b := range buckets {
		count := final[b.Key]
		if count == 0 {
			continue
		}
		chapterFilter := baseFilter
		chapterFilter.ChapterCode = b.Key
		pool, err := s.questions.Find(ctx, chapterFilter, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to load chapter %s pool: %w", b.Key, err)
		}
		quiz.Questions = append(quiz.Questions, s.sampler.Sample(pool, count)...)
	}

	if req.Shuffle {
		s.sampler.Shuffle(quiz.Questions)
	}
	quiz.Delivered = len(quiz.Questions)
	return quiz, nil
}

// ComposeCustom builds a test split across difficulty levels by the
// requested percentages. An all-zero split falls back to the configured
// default mix.
func (s *QuizService) ComposeCustom(ctx context.Context, req CustomRequest) (*ComposedQuiz, error) {
	quiz := &ComposedQuiz{
		SubjectCode: req.SubjectCode,
		Requested:   req.TotalQuestions,
		Allocation:  map[string]int{},
		Questions:   []models.Question{},
	}
	if req.TotalQuestions <= 0 {
		return quiz, nil
	}

	excludeIDs, err := s.reportedExclusions(ctx, req.IncludeReported)
	if err != nil {
		return nil, err
	}

	percents := allocation.NormalizePercents(map[string]float64{
		models.DifficultyEasy:   req.EasyPercent,
		models.DifficultyMedium: req.MediumPercent,
		models.DifficultyHard:   req.HardPercent,
	})
	if percents[models.DifficultyEasy]+percents[models.DifficultyMedium]+percents[models.DifficultyHard] == 0 {
		percents = map[string]float64{
			models.DifficultyEasy:   s.cfg.DefaultEasyPct,
			models.DifficultyMedium: s.cfg.DefaultMediumPct,
			models.DifficultyHard:   s.cfg.DefaultHardPct,
		}
	}

	buckets := make([]allocation.Bucket, 0, len(models.Difficulties))
	for _, difficulty := range models.Difficulties {
		buckets = append(buckets, allocation.Bucket{Key: difficulty, Weight: percents[difficulty]})
	}

	baseFilter := repository.QuestionFilter{
		SubjectCode:  req.SubjectCode,
		ChapterCodes: req.ChapterCodes,
		ExcludeIDs:   excludeIDs,
	}
	available, err := s.questions.CountByDifficulty(ctx, baseFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to count difficulty inventory: %w", err)
	}

	desired := allocation.Allocate(req.TotalQuestions, buckets)
	final := allocation.Reconcile(desired, available, buckets)
	quiz.Allocation = final

	for _, difficulty := range models.Difficulties {
		count := final[difficulty]
		if count == 0 {
			continue
		}
		difficultyFilter := baseFilter
		difficultyFilter.Difficulty = difficulty
		pool, err := s.questions.Find(ctx, difficultyFilter, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s pool: %w", difficulty, err)
		}
		quiz.Questions = append(quiz.Questions, s.sampler.Sample(pool, count)...)
	}

	if req.Shuffle {
		s.sampler.Shuffle(quiz.Questions)
	}
	quiz.Delivered = len(quiz.Questions)
	return quiz, nil
}

func (s *QuizService) reportedExclusions(ctx context.Context, includeReported bool) ([]string, error) {
	if includeReported {
		return nil, nil
	}
	ids, err := s.reports.FindUnresolvedQuestionIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reported question ids: %w", err)
	}
	seen := make(map[string]bool, len(ids))
	deduped := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		deduped = append(deduped, id)
	}
	return deduped, nil
}
