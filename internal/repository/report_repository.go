package repository

import (
	"context"
	"time"

	"exam-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReportRepository struct {
	Col *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{Col: db.Collection("question_reports")}
}

func (r *ReportRepository) Create(ctx context.Context, report *models.QuestionReport) error {
	_, err := r.Col.InsertOne(ctx, report)
	return err
}

// FindUnresolvedQuestionIDs returns the distinct question ids under an
// unresolved report, for exclusion from composed quizzes.
func (r *ReportRepository) FindUnresolvedQuestionIDs(ctx context.Context) ([]string, error) {
	values, err := r.Col.Distinct(ctx, "question_id", bson.M{"resolved": false})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *ReportRepository) FindUnresolved(ctx context.Context) ([]models.QuestionReport, error) {
	cur, err := r.Col.Find(ctx, bson.M{"resolved": false})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reports []models.QuestionReport
	for cur.Next(ctx) {
		var report models.QuestionReport
		if err := cur.Decode(&report); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (r *ReportRepository) Resolve(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"resolved":    true,
		"resolved_at": time.Now(),
	}})
	return err
}
