package scoring

import (
	"math"

	"exam-service/internal/models"
)

// Summary is the outcome of grading one submission: raw counts plus the
// chapter-weighted score used for the pass decision.
type Summary struct {
	TotalQuestions  int
	CorrectAnswers  int
	WrongAnswers    int
	NotAttempted    int
	Score           int
	WeightedScore   float64
	WeightedTotal   float64
	WeightedPercent int
	Passed          bool
}

// Score grades a submission against the subject's current chapter weight
// map. Answers with a missing or unweighted chapter count with weight 1;
// if no chapter resolves at all the weighted percent falls back to the
// raw percent. Pass/fail compares the weighted percent to passPercent.
func Score(answers []models.Answer, chapterWeights map[string]float64, passPercent int) Summary {
	summary := Summary{TotalQuestions: len(answers)}

	for _, a := range answers {
		switch {
		case !a.Attempted():
			summary.NotAttempted++
		case a.IsCorrect:
			summary.CorrectAnswers++
		default:
			summary.WrongAnswers++
		}

		weight := 1.0
		if w, ok := chapterWeights[a.ChapterCode]; ok && w > 0 {
			weight = w
		}
		summary.WeightedTotal += weight
		if a.IsCorrect {
			summary.WeightedScore += weight
		}
	}

	if summary.TotalQuestions > 0 {
		summary.Score = roundPercent(float64(summary.CorrectAnswers), float64(summary.TotalQuestions))
	}
	if summary.WeightedTotal > 0 {
		summary.WeightedPercent = roundPercent(summary.WeightedScore, summary.WeightedTotal)
	} else {
		summary.WeightedPercent = summary.Score
	}
	summary.Passed = summary.WeightedPercent >= passPercent

	return summary
}

func roundPercent(part, total float64) int {
	return int(math.Round(part / total * 100))
}
