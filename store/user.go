package store

import (
	"context"
	"time"

	"truebond/database"
	"truebond/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore struct {
	users *mongo.Collection
}

func NewUserStore(db *database.DB) *UserStore {
	return &UserStore{users: db.Users}
}

// FindByEmail returns (nil, nil) when no account exists for the email;
// an absent record on a keyed lookup is not an error.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) Insert(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := s.users.InsertOne(ctx, user)
	return err
}

func (s *UserStore) UpdateStatus(ctx context.Context, email, status string) error {
	_, err := s.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$set": bson.M{"status": status},
	})
	return err
}

func (s *UserStore) UpdateLastLogin(ctx context.Context, email string, at int64) error {
	_, err := s.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$set": bson.M{"lastLoginAt": at},
	})
	return err
}

// SetRole promotes the account with the given id to the role (admin/premium).
func (s *UserStore) SetRole(ctx context.Context, id primitive.ObjectID, role string) error {
	result, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"role": role},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *UserStore) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Search matches account names case-insensitively by substring.
func (s *UserStore) Search(ctx context.Context, name string) ([]models.User, error) {
	query := bson.M{"name": bson.M{"$regex": name, "$options": "i"}}
	cursor, err := s.users.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) Premium(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{"role": models.RolePremium})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) CountPremium(ctx context.Context) (int64, error) {
	return s.users.CountDocuments(ctx, bson.M{"role": models.RolePremium})
}

// PremiumProfiles runs the premium listing aggregation: premium accounts
// inner-joined with their biodata, sorted by age. Accounts without a biodata
// are dropped by the plain $unwind.
func (s *UserStore) PremiumProfiles(ctx context.Context, descending bool) ([]models.PremiumProfile, error) {
	sortOrder := 1
	if descending {
		sortOrder = -1
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.users.Aggregate(ctx, premiumProfilesPipeline(sortOrder))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	profiles := []models.PremiumProfile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// RequestedPremium lists accounts that asked for the premium upgrade. Unlike
// PremiumProfiles the unwind preserves join misses: a requesting account with
// no biodata yet still appears, with the profile-derived fields empty.
func (s *UserStore) RequestedPremium(ctx context.Context) ([]models.RequestedPremiumRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.users.Aggregate(ctx, requestedPremiumPipeline())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []models.RequestedPremiumRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func premiumProfilesPipeline(sortOrder int) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "role", Value: models.RolePremium},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "biodatas"},
			{Key: "localField", Value: "email"},
			{Key: "foreignField", Value: "contactEmail"},
			{Key: "as", Value: "biodata"},
		}}},
		bson.D{{Key: "$unwind", Value: "$biodata"}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "biodata.age", Value: sortOrder},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: "$biodata._id"},
			{Key: "email", Value: 1},
			{Key: "name", Value: "$biodata.name"},
			{Key: "biodataType", Value: "$biodata.biodataType"},
			{Key: "profileImageUrl", Value: "$biodata.profileImageUrl"},
			{Key: "age", Value: "$biodata.age"},
			{Key: "occupation", Value: "$biodata.occupation"},
			{Key: "permanentDivision", Value: "$biodata.permanentDivision"},
			{Key: "biodataId", Value: "$biodata.biodataId"},
		}}},
	}
}

func requestedPremiumPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "status", Value: models.StatusRequestedPremium},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "biodatas"},
			{Key: "localField", Value: "email"},
			{Key: "foreignField", Value: "contactEmail"},
			{Key: "as", Value: "biodata"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$biodata"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "email", Value: 1},
			{Key: "name", Value: 1},
			{Key: "biodataType", Value: "$biodata.biodataType"},
			{Key: "biodataId", Value: "$biodata.biodataId"},
		}}},
	}
}
