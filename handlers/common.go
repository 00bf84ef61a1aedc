package handlers

import (
	"context"

	"truebond/models"
	"truebond/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store seams the handlers depend on. The mongo-backed implementations live in
// the store package; tests substitute in-memory fakes.

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	UpdateStatus(ctx context.Context, email, status string) error
	UpdateLastLogin(ctx context.Context, email string, at int64) error
	SetRole(ctx context.Context, id primitive.ObjectID, role string) error
	All(ctx context.Context) ([]models.User, error)
	Search(ctx context.Context, name string) ([]models.User, error)
	Premium(ctx context.Context) ([]models.User, error)
	CountPremium(ctx context.Context) (int64, error)
	PremiumProfiles(ctx context.Context, descending bool) ([]models.PremiumProfile, error)
	RequestedPremium(ctx context.Context) ([]models.RequestedPremiumRow, error)
}

type BiodataStore interface {
	FindByContactEmail(ctx context.Context, email string) (*models.Biodata, error)
	FindByBiodataID(ctx context.Context, id int64) (*models.Biodata, error)
	NextID(ctx context.Context) (int64, error)
	Insert(ctx context.Context, b *models.Biodata) error
	Update(ctx context.Context, b *models.Biodata) error
	All(ctx context.Context, f store.Filter) ([]models.Biodata, error)
	Similar(ctx context.Context, biodataType string, excludeID int64, limit int64) ([]models.Biodata, error)
	TotalCount(ctx context.Context) (int64, error)
	CountByType(ctx context.Context, biodataType string) (int64, error)
}

type FavoriteStore interface {
	Exists(ctx context.Context, ownerEmail string, biodataID int64) (bool, error)
	Insert(ctx context.Context, fav *models.Favorite) error
	ByOwner(ctx context.Context, ownerEmail string) ([]models.Favorite, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PaymentStore interface {
	Insert(ctx context.Context, p *models.Payment) error
	ByEmail(ctx context.Context, email string) ([]models.Payment, error)
	All(ctx context.Context) ([]models.Payment, error)
	Approve(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Revenue(ctx context.Context) (int64, error)
}

type ReviewStore interface {
	All(ctx context.Context) ([]models.Review, error)
	Insert(ctx context.Context, r *models.Review) error
}

type SuccessStoryStore interface {
	All(ctx context.Context) ([]models.SuccessStory, error)
	Insert(ctx context.Context, story *models.SuccessStory) error
	Count(ctx context.Context) (int64, error)
}
