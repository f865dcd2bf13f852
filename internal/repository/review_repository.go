package repository

import (
	"context"
	"time"

	"exam-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepository struct {
	Col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{Col: db.Collection("review_schedules")}
}

func (r *ReviewRepository) Find(ctx context.Context, userID, questionID string) (*models.ReviewSchedule, error) {
	var schedule models.ReviewSchedule
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "question_id": questionID}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

// Upsert writes the schedule keyed on (user_id, question_id). Concurrent
// submissions race last-write-wins at the store, which is acceptable for
// self-correcting review state.
func (r *ReviewRepository) Upsert(ctx context.Context, schedule *models.ReviewSchedule) error {
	filter := bson.M{"user_id": schedule.UserID, "question_id": schedule.QuestionID}
	update := bson.M{"$set": bson.M{
		"user_id":       schedule.UserID,
		"question_id":   schedule.QuestionID,
		"interval_days": schedule.IntervalDays,
		"ease_factor":   schedule.EaseFactor,
		"repetitions":   schedule.Repetitions,
		"due_date":      schedule.DueDate,
		"last_reviewed": schedule.LastReviewed,
	}}
	_, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// FindDue returns schedules whose due date has passed, oldest due first,
// capped at limit.
func (r *ReviewRepository) FindDue(ctx context.Context, userID string, now time.Time, limit int64) ([]models.ReviewSchedule, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "due_date", Value: 1}}).
		SetLimit(limit)
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID, "due_date": bson.M{"$lte": now}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var schedules []models.ReviewSchedule
	for cur.Next(ctx) {
		var schedule models.ReviewSchedule
		if err := cur.Decode(&schedule); err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	return schedules, nil
}
