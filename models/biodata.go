package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Biodata types.
const (
	BiodataTypeMale   = "Male"
	BiodataTypeFemale = "Female"
)

// Biodata is a matchmaking profile. BiodataID is assigned once on first
// insert and never recomputed; ContactEmail is the upsert key (one biodata
// per account email).
type Biodata struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BiodataID             int64              `bson:"biodataId" json:"biodataId"`
	BiodataType           string             `bson:"biodataType" json:"biodataType"`
	Name                  string             `bson:"name" json:"name"`
	ProfileImageURL       string             `bson:"profileImageUrl" json:"profileImageUrl"`
	DateOfBirth           string             `bson:"dateOfBirth" json:"dateOfBirth"`
	Height                string             `bson:"height" json:"height"`
	Weight                string             `bson:"weight" json:"weight"`
	Age                   int                `bson:"age" json:"age"`
	Occupation            string             `bson:"occupation" json:"occupation"`
	Race                  string             `bson:"race" json:"race"`
	FathersName           string             `bson:"fathersName" json:"fathersName"`
	MothersName           string             `bson:"mothersName" json:"mothersName"`
	PermanentDivision     string             `bson:"permanentDivision" json:"permanentDivision"`
	PresentDivision       string             `bson:"presentDivision" json:"presentDivision"`
	ExpectedPartnerAge    string             `bson:"expectedPartnerAge" json:"expectedPartnerAge"`
	ExpectedPartnerHeight string             `bson:"expectedPartnerHeight" json:"expectedPartnerHeight"`
	ExpectedPartnerWeight string             `bson:"expectedPartnerWeight" json:"expectedPartnerWeight"`
	ContactEmail          string             `bson:"contactEmail" json:"contactEmail"`
	MobileNumber          string             `bson:"mobileNumber" json:"mobileNumber"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
	UpdatedAt int64 `bson:"updatedAt" json:"updatedAt"`
}

// PremiumProfile is the projected output row of the premium-profiles
// aggregation: account fields joined with the owning biodata.
type PremiumProfile struct {
	ID                primitive.ObjectID `bson:"_id" json:"id"`
	Email             string             `bson:"email" json:"email"`
	Name              string             `bson:"name" json:"name"`
	BiodataType       string             `bson:"biodataType" json:"biodataType"`
	ProfileImageURL   string             `bson:"profileImageUrl" json:"profileImageUrl"`
	Age               int                `bson:"age" json:"age"`
	Occupation        string             `bson:"occupation" json:"occupation"`
	PermanentDivision string             `bson:"permanentDivision" json:"permanentDivision"`
	BiodataID         int64              `bson:"biodataId" json:"biodataId"`
}

// RequestedPremiumRow is one row of the requested-premium view. The biodata
// side of the join may be missing, so everything profile-derived is optional.
type RequestedPremiumRow struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name" json:"name"`
	BiodataType *string            `bson:"biodataType,omitempty" json:"biodataType,omitempty"`
	BiodataID   *int64             `bson:"biodataId,omitempty" json:"biodataId,omitempty"`
}
