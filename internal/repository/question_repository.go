package repository

import (
	"context"

	"exam-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuestionFilter narrows inventory queries. Zero fields are ignored.
// ExcludeIDs is applied inside the query so allocation math never sees
// invisible exclusions.
type QuestionFilter struct {
	SubjectCode  string
	ChapterCode  string
	ChapterCodes []string
	Difficulty   string
	ExcludeIDs   []string
}

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func buildQuestionFilter(f QuestionFilter) bson.M {
	filter := bson.M{"status": bson.M{"$ne": "deleted"}}
	if f.SubjectCode != "" {
		filter["subject_code"] = f.SubjectCode
	}
	if f.ChapterCode != "" {
		filter["chapter_code"] = f.ChapterCode
	} else if len(f.ChapterCodes) > 0 {
		filter["chapter_code"] = bson.M{"$in": f.ChapterCodes}
	}
	if f.Difficulty != "" {
		filter["difficulty"] = f.Difficulty
	}
	if len(f.ExcludeIDs) > 0 {
		filter["_id"] = bson.M{"$nin": f.ExcludeIDs}
	}
	return filter
}

func (r *QuestionRepository) Find(ctx context.Context, f QuestionFilter, limit, offset int64) ([]models.Question, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if offset > 0 {
		opts.SetSkip(offset)
	}
	cur, err := r.Col.Find(ctx, buildQuestionFilter(f), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// CountByChapter returns available inventory per chapter code.
func (r *QuestionRepository) CountByChapter(ctx context.Context, f QuestionFilter, chapterCodes []string) (map[string]int, error) {
	counts := make(map[string]int, len(chapterCodes))
	for _, code := range chapterCodes {
		chapterFilter := f
		chapterFilter.ChapterCode = code
		chapterFilter.ChapterCodes = nil
		n, err := r.Col.CountDocuments(ctx, buildQuestionFilter(chapterFilter))
		if err != nil {
			return nil, err
		}
		counts[code] = int(n)
	}
	return counts, nil
}

// CountByDifficulty returns available inventory per difficulty level.
func (r *QuestionRepository) CountByDifficulty(ctx context.Context, f QuestionFilter) (map[string]int, error) {
	counts := make(map[string]int, len(models.Difficulties))
	for _, difficulty := range models.Difficulties {
		difficultyFilter := f
		difficultyFilter.Difficulty = difficulty
		n, err := r.Col.CountDocuments(ctx, buildQuestionFilter(difficultyFilter))
		if err != nil {
			return nil, err
		}
		counts[difficulty] = int(n)
	}
	return counts, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

func (r *QuestionRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": "deleted"}})
	return err
}
