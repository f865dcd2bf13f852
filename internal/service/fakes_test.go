package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"exam-service/internal/models"
	"exam-service/internal/repository"
)

// In-memory stores backing the service tests.

type fakeQuestionStore struct {
	questions []models.Question
}

func (f *fakeQuestionStore) matches(q models.Question, filter repository.QuestionFilter) bool {
	if q.Status == "deleted" {
		return false
	}
	if filter.SubjectCode != "" && q.SubjectCode != filter.SubjectCode {
		return false
	}
	if filter.ChapterCode != "" && q.ChapterCode != filter.ChapterCode {
		return false
	}
	if filter.ChapterCode == "" && len(filter.ChapterCodes) > 0 {
		found := false
		for _, code := range filter.ChapterCodes {
			if q.ChapterCode == code {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.Difficulty != "" && q.Difficulty != filter.Difficulty {
		return false
	}
	for _, id := range filter.ExcludeIDs {
		if q.ID == id {
			return false
		}
	}
	return true
}

func (f *fakeQuestionStore) Find(_ context.Context, filter repository.QuestionFilter, limit, offset int64) ([]models.Question, error) {
	var out []models.Question
	for _, q := range f.questions {
		if f.matches(q, filter) {
			out = append(out, q)
		}
	}
	if offset > 0 {
		if offset >= int64(len(out)) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeQuestionStore) FindByIDs(_ context.Context, ids []string) ([]models.Question, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Question
	for _, q := range f.questions {
		if want[q.ID] {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionStore) CountByChapter(ctx context.Context, filter repository.QuestionFilter, chapterCodes []string) (map[string]int, error) {
	counts := make(map[string]int, len(chapterCodes))
	for _, code := range chapterCodes {
		chapterFilter := filter
		chapterFilter.ChapterCode = code
		found, _ := f.Find(ctx, chapterFilter, 0, 0)
		counts[code] = len(found)
	}
	return counts, nil
}

func (f *fakeQuestionStore) CountByDifficulty(ctx context.Context, filter repository.QuestionFilter) (map[string]int, error) {
	counts := make(map[string]int, len(models.Difficulties))
	for _, difficulty := range models.Difficulties {
		difficultyFilter := filter
		difficultyFilter.Difficulty = difficulty
		found, _ := f.Find(ctx, difficultyFilter, 0, 0)
		counts[difficulty] = len(found)
	}
	return counts, nil
}

type fakeSubjectStore struct {
	subjects map[string]*models.Subject
}

func (f *fakeSubjectStore) FindByCode(_ context.Context, code string) (*models.Subject, error) {
	return f.subjects[code], nil
}

type fakeReportStore struct {
	ids []string
}

func (f *fakeReportStore) FindUnresolvedQuestionIDs(_ context.Context) ([]string, error) {
	return f.ids, nil
}

type scheduleKey struct {
	userID     string
	questionID string
}

type fakeReviewStore struct {
	schedules map[scheduleKey]models.ReviewSchedule
	failWrite bool
	writes    int
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{schedules: make(map[scheduleKey]models.ReviewSchedule)}
}

func (f *fakeReviewStore) Find(_ context.Context, userID, questionID string) (*models.ReviewSchedule, error) {
	if schedule, ok := f.schedules[scheduleKey{userID, questionID}]; ok {
		copied := schedule
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeReviewStore) Upsert(_ context.Context, schedule *models.ReviewSchedule) error {
	if f.failWrite {
		return errors.New("write refused")
	}
	f.writes++
	f.schedules[scheduleKey{schedule.UserID, schedule.QuestionID}] = *schedule
	return nil
}

func (f *fakeReviewStore) FindDue(_ context.Context, userID string, now time.Time, limit int64) ([]models.ReviewSchedule, error) {
	var due []models.ReviewSchedule
	for key, schedule := range f.schedules {
		if key.userID == userID && !schedule.DueDate.After(now) {
			due = append(due, schedule)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].DueDate.Before(due[j].DueDate)
	})
	if limit > 0 && int64(len(due)) > limit {
		due = due[:limit]
	}
	return due, nil
}

type fakeResultStore struct {
	results []*models.Result
}

func (f *fakeResultStore) Create(_ context.Context, result *models.Result) error {
	f.results = append(f.results, result)
	return nil
}

func (f *fakeResultStore) FindByUser(_ context.Context, userID string) ([]models.Result, error) {
	var out []models.Result
	for _, r := range f.results {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}
