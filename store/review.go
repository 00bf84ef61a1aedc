package store

import (
	"context"

	"truebond/database"
	"truebond/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewStore struct {
	reviews *mongo.Collection
}

func NewReviewStore(db *database.DB) *ReviewStore {
	return &ReviewStore{reviews: db.Reviews}
}

func (s *ReviewStore) All(ctx context.Context) ([]models.Review, error) {
	cursor, err := s.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewStore) Insert(ctx context.Context, r *models.Review) error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	_, err := s.reviews.InsertOne(ctx, r)
	return err
}

type SuccessStoryStore struct {
	stories *mongo.Collection
}

func NewSuccessStoryStore(db *database.DB) *SuccessStoryStore {
	return &SuccessStoryStore{stories: db.SuccessStories}
}

func (s *SuccessStoryStore) All(ctx context.Context) ([]models.SuccessStory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "marriageDate", Value: -1}})
	cursor, err := s.stories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stories := []models.SuccessStory{}
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (s *SuccessStoryStore) Insert(ctx context.Context, story *models.SuccessStory) error {
	if story.ID.IsZero() {
		story.ID = primitive.NewObjectID()
	}
	_, err := s.stories.InsertOne(ctx, story)
	return err
}

func (s *SuccessStoryStore) Count(ctx context.Context) (int64, error) {
	return s.stories.CountDocuments(ctx, bson.M{})
}
