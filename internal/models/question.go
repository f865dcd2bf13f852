package models

type Option struct {
	Text string `bson:"text" json:"text"`
}

type Question struct {
	ID             string   `bson:"_id,omitempty" json:"id"`
	SubjectCode    string   `bson:"subject_code" json:"subject_code"`
	ChapterCode    string   `bson:"chapter_code,omitempty" json:"chapter_code,omitempty"`
	Difficulty     string   `bson:"difficulty" json:"difficulty"`
	Content        string   `bson:"content" json:"content"`
	Options        []Option `bson:"options" json:"options"`
	CorrectOptions []int    `bson:"correct_options" json:"correct_options"`
	AllowMultiple  bool     `bson:"allow_multiple" json:"allow_multiple"`
	Explanation    string   `bson:"explanation" json:"explanation"`
	Status         string   `bson:"status,omitempty" json:"status,omitempty"`
}

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Difficulties lists the recognized difficulty levels in allocation order.
var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// IsCorrectSelection reports whether the selected option indices exactly
// match the question's correct set, regardless of order.
func (q *Question) IsCorrectSelection(selected []int) bool {
	if len(selected) != len(q.CorrectOptions) {
		return false
	}
	correct := make(map[int]bool, len(q.CorrectOptions))
	for _, idx := range q.CorrectOptions {
		correct[idx] = true
	}
	for _, idx := range selected {
		if !correct[idx] {
			return false
		}
		// Each correct index may be claimed once.
		correct[idx] = false
	}
	return true
}
