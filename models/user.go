package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account roles.
const (
	RoleBasic   = "basic"
	RolePremium = "premium"
	RoleAdmin   = "admin"
)

// StatusRequestedPremium is the literal status value the frontend sends when a
// user asks to be upgraded. It is matched verbatim in the requested-premium view.
const StatusRequestedPremium = "Requested for Premium"

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PhotoURL     string             `bson:"photoURL" json:"photoURL"`
	Role         string             `bson:"role" json:"role"`
	Status       string             `bson:"status" json:"status"`
	PasswordHash *string            `bson:"passwordHash,omitempty" json:"-"`

	CreatedAt   int64 `bson:"createdAt" json:"createdAt"`
	LastLoginAt int64 `bson:"lastLoginAt" json:"lastLoginAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
