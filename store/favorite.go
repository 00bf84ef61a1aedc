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

type FavoriteStore struct {
	favorites *mongo.Collection
}

func NewFavoriteStore(db *database.DB) *FavoriteStore {
	return &FavoriteStore{favorites: db.Favorites}
}

func (s *FavoriteStore) Exists(ctx context.Context, ownerEmail string, biodataID int64) (bool, error) {
	count, err := s.favorites.CountDocuments(ctx, bson.M{
		"ownerEmail": ownerEmail,
		"biodataId":  biodataID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *FavoriteStore) Insert(ctx context.Context, fav *models.Favorite) error {
	if fav.ID.IsZero() {
		fav.ID = primitive.NewObjectID()
	}
	_, err := s.favorites.InsertOne(ctx, fav)
	return err
}

func (s *FavoriteStore) ByOwner(ctx context.Context, ownerEmail string) ([]models.Favorite, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.favorites.Find(ctx, bson.M{"ownerEmail": ownerEmail}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	favorites := []models.Favorite{}
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (s *FavoriteStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.favorites.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
