package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Favorite bookmarks a biodata for the owning account. A few display fields
// are denormalized at insert time so the favorites list renders without a join.
type Favorite struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BiodataID         int64              `bson:"biodataId" json:"biodataId"`
	OwnerEmail        string             `bson:"ownerEmail" json:"ownerEmail"`
	Name              string             `bson:"name" json:"name"`
	PermanentDivision string             `bson:"permanentDivision" json:"permanentDivision"`
	Occupation        string             `bson:"occupation" json:"occupation"`
	CreatedAt         int64              `bson:"createdAt" json:"createdAt"`
}
