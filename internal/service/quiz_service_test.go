package service

import (
	"context"
	"fmt"
	"testing"

	"exam-service/internal/allocation"
	"exam-service/internal/config"
	"exam-service/internal/models"
)

func testQuizConfig() config.QuizConfig {
	return config.QuizConfig{
		PassPercent:      50,
		DefaultEasyPct:   34,
		DefaultMediumPct: 33,
		DefaultHardPct:   33,
	}
}

func bankQuestion(id, subject, chapter, difficulty string) models.Question {
	return models.Question{
		ID:             id,
		SubjectCode:    subject,
		ChapterCode:    chapter,
		Difficulty:     difficulty,
		CorrectOptions: []int{0},
	}
}

// seedBank builds a bank with n questions per (chapter, difficulty) cell.
func seedBank(subject string, chapters []string, perCell int) *fakeQuestionStore {
	store := &fakeQuestionStore{}
	for _, chapter := range chapters {
		for _, difficulty := range models.Difficulties {
			for i := 0; i < perCell; i++ {
				id := fmt.Sprintf("%s-%s-%s-%d", subject, chapter, difficulty, i)
				store.questions = append(store.questions, bankQuestion(id, subject, chapter, difficulty))
			}
		}
	}
	return store
}

func newTestQuizService(questions *fakeQuestionStore, subjects *fakeSubjectStore, reports *fakeReportStore) *QuizService {
	return NewQuizService(questions, subjects, reports, allocation.NewSamplerWithSeed(1), testQuizConfig())
}

func mathSubject() *fakeSubjectStore {
	return &fakeSubjectStore{subjects: map[string]*models.Subject{
		"MATH": {
			Code: "MATH",
			Chapters: []models.Chapter{
				{Code: "alg", Weightage: 3},
				{Code: "geo", Weightage: 1},
			},
		},
	}}
}

func TestComposeFullBookWeightedSplit(t *testing.T) {
	questions := seedBank("MATH", []string{"alg", "geo"}, 10)
	svc := newTestQuizService(questions, mathSubject(), &fakeReportStore{})

	quiz, err := svc.ComposeFullBook(context.Background(), FullBookRequest{
		SubjectCode:    "MATH",
		TotalQuestions: 8,
	})
	if err != nil {
		t.Fatalf("ComposeFullBook failed: %v", err)
	}

	if quiz.Delivered != 8 {
		t.Errorf("Expected 8 questions delivered, got %d", quiz.Delivered)
	}
	// Weightage 3:1 over 8 questions.
	if quiz.Allocation["alg"] != 6 || quiz.Allocation["geo"] != 2 {
		t.Errorf("Expected allocation alg=6 geo=2, got %v", quiz.Allocation)
	}
	for _, q := range quiz.Questions {
		if q.SubjectCode != "MATH" {
			t.Errorf("Question %s from wrong subject %s", q.ID, q.SubjectCode)
		}
	}
}

func TestComposeFullBookShortfall(t *testing.T) {
	// geo can only supply 1 question; its share moves to alg.
	questions := &fakeQuestionStore{}
	for i := 0; i < 20; i++ {
		questions.questions = append(questions.questions, bankQuestion(fmt.Sprintf("a%d", i), "MATH", "alg", "easy"))
	}
	questions.questions = append(questions.questions, bankQuestion("g0", "MATH", "geo", "easy"))

	subjects := &fakeSubjectStore{subjects: map[string]*models.Subject{
		"MATH": {Code: "MATH", Chapters: []models.Chapter{
			{Code: "alg", Weightage: 1},
			{Code: "geo", Weightage: 1},
		}},
	}}
	svc := newTestQuizService(questions, subjects, &fakeReportStore{})

	quiz, err := svc.ComposeFullBook(context.Background(), FullBookRequest{
		SubjectCode:    "MATH",
		TotalQuestions: 10,
	})
	if err != nil {
		t.Fatalf("ComposeFullBook failed: %v", err)
	}

	if quiz.Delivered != 10 {
		t.Errorf("Expected shortfall redistributed to full 10, got %d", quiz.Delivered)
	}
	if quiz.Allocation["geo"] != 1 || quiz.Allocation["alg"] != 9 {
		t.Errorf("Expected alg=9 geo=1, got %v", quiz.Allocation)
	}
}

func TestComposeFullBookNoChaptersFallback(t *testing.T) {
	// Subject exists but its questions carry no chapter codes.
	questions := &fakeQuestionStore{}
	for i := 0; i < 5; i++ {
		questions.questions = append(questions.questions, bankQuestion(fmt.Sprintf("q%d", i), "HIST", "", "medium"))
	}
	subjects := &fakeSubjectStore{subjects: map[string]*models.Subject{
		"HIST": {Code: "HIST"},
	}}
	svc := newTestQuizService(questions, subjects, &fakeReportStore{})

	quiz, err := svc.ComposeFullBook(context.Background(), FullBookRequest{
		SubjectCode:    "HIST",
		TotalQuestions: 3,
	})
	if err != nil {
		t.Fatalf("ComposeFullBook failed: %v", err)
	}
	if quiz.Delivered != 3 {
		t.Errorf("Expected flat fallback to deliver 3, got %d", quiz.Delivered)
	}
}

func TestComposeFullBookUnknownSubject(t *testing.T) {
	svc := newTestQuizService(&fakeQuestionStore{}, &fakeSubjectStore{subjects: map[string]*models.Subject{}}, &fakeReportStore{})

	quiz, err := svc.ComposeFullBook(context.Background(), FullBookRequest{
		SubjectCode:    "NOPE",
		TotalQuestions: 10,
	})
	if err != nil {
		t.Fatalf("Expected graceful empty result, got error: %v", err)
	}
	if quiz.Delivered != 0 {
		t.Errorf("Expected 0 questions for unknown subject, got %d", quiz.Delivered)
	}
}

func TestComposeFullBookExcludesReported(t *testing.T) {
	questions := &fakeQuestionStore{}
	for i := 0; i < 4; i++ {
		questions.questions = append(questions.questions, bankQuestion(fmt.Sprintf("q%d", i), "MATH", "alg", "easy"))
	}
	subjects := &fakeSubjectStore{subjects: map[string]*models.Subject{
		"MATH": {Code: "MATH", Chapters: []models.Chapter{{Code: "alg", Weightage: 1}}},
	}}
	reports := &fakeReportStore{ids: []string{"q0", "q1"}}
	svc := newTestQuizService(questions, subjects, reports)

	quiz, err := svc.ComposeFullBook(context.Background(), FullBookRequest{
		SubjectCode:    "MATH",
		TotalQuestions: 4,
	})
	if err != nil {
		t.Fatalf("ComposeFullBook failed: %v", err)
	}
	if quiz.Delivered != 2 {
		t.Errorf("Expected 2 questions after exclusions, got %d", quiz.Delivered)
	}
	for _, q := range quiz.Questions {
		if q.ID == "q0" || q.ID == "q1" {
			t.Errorf("Reported question %s should be excluded", q.ID)
		}
	}
}

func TestComposeCustomDifficultySplit(t *testing.T) {
	questions := seedBank("MATH", []string{"alg"}, 20)
	svc := newTestQuizService(questions, mathSubject(), &fakeReportStore{})

	quiz, err := svc.ComposeCustom(context.Background(), CustomRequest{
		SubjectCode:    "MATH",
		TotalQuestions: 10,
		EasyPercent:    30,
		MediumPercent:  50,
		HardPercent:    20,
	})
	if err != nil {
		t.Fatalf("ComposeCustom failed: %v", err)
	}

	expected := map[string]int{"easy": 3, "medium": 5, "hard": 2}
	for difficulty, want := range expected {
		if quiz.Allocation[difficulty] != want {
			t.Errorf("Expected %s=%d, got %d", difficulty, want, quiz.Allocation[difficulty])
		}
	}
	if quiz.Delivered != 10 {
		t.Errorf("Expected 10 questions delivered, got %d", quiz.Delivered)
	}
}

func TestComposeCustomDeficitRedistribution(t *testing.T) {
	// Only 1 easy question available: the easy deficit of 2 flows into
	// medium and hard, keeping the total at 10.
	questions := &fakeQuestionStore{}
	questions.questions = append(questions.questions, bankQuestion("e0", "MATH", "alg", "easy"))
	for i := 0; i < 10; i++ {
		questions.questions = append(questions.questions, bankQuestion(fmt.Sprintf("m%d", i), "MATH", "alg", "medium"))
		questions.questions = append(questions.questions, bankQuestion(fmt.Sprintf("h%d", i), "MATH", "alg", "hard"))
	}
	svc := newTestQuizService(questions, mathSubject(), &fakeReportStore{})

	quiz, err := svc.ComposeCustom(context.Background(), CustomRequest{
		SubjectCode:    "MATH",
		TotalQuestions: 10,
		EasyPercent:    30,
		MediumPercent:  50,
		HardPercent:    20,
	})
	if err != nil {
		t.Fatalf("ComposeCustom failed: %v", err)
	}

	if quiz.Delivered != 10 {
		t.Errorf("Expected full 10 after redistribution, got %d", quiz.Delivered)
	}
	if quiz.Allocation["easy"] != 1 {
		t.Errorf("Expected easy capped at 1, got %d", quiz.Allocation["easy"])
	}
}

func TestComposeCustomZeroPercentsFallback(t *testing.T) {
	questions := seedBank("MATH", []string{"alg"}, 20)
	svc := newTestQuizService(questions, mathSubject(), &fakeReportStore{})

	quiz, err := svc.ComposeCustom(context.Background(), CustomRequest{
		SubjectCode:    "MATH",
		TotalQuestions: 10,
	})
	if err != nil {
		t.Fatalf("ComposeCustom failed: %v", err)
	}

	// Default 34/33/33 over 10: easy takes the leftover unit.
	expected := map[string]int{"easy": 4, "medium": 3, "hard": 3}
	for difficulty, want := range expected {
		if quiz.Allocation[difficulty] != want {
			t.Errorf("Expected %s=%d under default split, got %d", difficulty, want, quiz.Allocation[difficulty])
		}
	}
	if quiz.Delivered != 10 {
		t.Errorf("Expected 10 questions, got %d", quiz.Delivered)
	}
}

func TestComposeCustomChapterFilter(t *testing.T) {
	questions := seedBank("MATH", []string{"alg", "geo"}, 5)
	svc := newTestQuizService(questions, mathSubject(), &fakeReportStore{})

	quiz, err := svc.ComposeCustom(context.Background(), CustomRequest{
		SubjectCode:    "MATH",
		ChapterCodes:   []string{"geo"},
		TotalQuestions: 6,
		EasyPercent:    34,
		MediumPercent:  33,
		HardPercent:    33,
	})
	if err != nil {
		t.Fatalf("ComposeCustom failed: %v", err)
	}

	for _, q := range quiz.Questions {
		if q.ChapterCode != "geo" {
			t.Errorf("Question %s leaked from chapter %s", q.ID, q.ChapterCode)
		}
	}
	if quiz.Delivered != 6 {
		t.Errorf("Expected 6 questions, got %d", quiz.Delivered)
	}
}
