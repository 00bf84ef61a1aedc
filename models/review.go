package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	PhotoURL  string             `bson:"photoURL" json:"photoURL"`
	Rating    int                `bson:"rating" json:"rating"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}

// SuccessStory is a married couple's writeup, referenced by both partners'
// biodata ids.
type SuccessStory struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SelfBiodataID    int64              `bson:"selfBiodataId" json:"selfBiodataId"`
	PartnerBiodataID int64              `bson:"partnerBiodataId" json:"partnerBiodataId"`
	CoupleImageURL   string             `bson:"coupleImageUrl" json:"coupleImageUrl"`
	MarriageDate     string             `bson:"marriageDate" json:"marriageDate"`
	ReviewStar       int                `bson:"reviewStar" json:"reviewStar"`
	SuccessStoryText string             `bson:"successStoryText" json:"successStoryText"`
	CreatedAt        int64              `bson:"createdAt" json:"createdAt"`
}
