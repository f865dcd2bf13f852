package repository

import (
	"context"

	"exam-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SubjectRepository struct {
	Col *mongo.Collection
}

func NewSubjectRepository(db *mongo.Database) *SubjectRepository {
	return &SubjectRepository{Col: db.Collection("subjects")}
}

func (r *SubjectRepository) FindByCode(ctx context.Context, code string) (*models.Subject, error) {
	var subject models.Subject
	err := r.Col.FindOne(ctx, bson.M{"code": code}).Decode(&subject)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &subject, nil
}

func (r *SubjectRepository) FindActive(ctx context.Context) ([]models.Subject, error) {
	cur, err := r.Col.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var subjects []models.Subject
	for cur.Next(ctx) {
		var subject models.Subject
		if err := cur.Decode(&subject); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	_, err := r.Col.InsertOne(ctx, subject)
	return err
}

func (r *SubjectRepository) Update(ctx context.Context, code string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"code": code}, bson.M{"$set": update})
	return err
}
