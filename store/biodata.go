package store

import (
	"context"

	"truebond/database"
	"truebond/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// biodataSeq is the _id of the counters document backing biodata id assignment.
const biodataSeq = "biodataId"

type BiodataStore struct {
	biodatas *mongo.Collection
	counters *mongo.Collection
}

func NewBiodataStore(db *database.DB) *BiodataStore {
	return &BiodataStore{biodatas: db.Biodatas, counters: db.Counters}
}

// FindByContactEmail returns (nil, nil) when the email has no biodata yet.
func (s *BiodataStore) FindByContactEmail(ctx context.Context, email string) (*models.Biodata, error) {
	var b models.Biodata
	err := s.biodatas.FindOne(ctx, bson.M{"contactEmail": email}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BiodataStore) FindByBiodataID(ctx context.Context, id int64) (*models.Biodata, error) {
	var b models.Biodata
	err := s.biodatas.FindOne(ctx, bson.M{"biodataId": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// NextID allocates the next sequential biodata id. Allocation is a single
// atomic $inc on the counters document, so two concurrent first-time upserts
// cannot observe the same value. The counter is seeded from the highest id
// already assigned in the collection the first time it is used; ids are
// max-based, so deleted documents leave holes rather than reused numbers.
func (s *BiodataStore) NextID(ctx context.Context) (int64, error) {
	if err := s.seedCounter(ctx); err != nil {
		return 0, err
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": biodataSeq},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func (s *BiodataStore) seedCounter(ctx context.Context) error {
	err := s.counters.FindOne(ctx, bson.M{"_id": biodataSeq}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	max, err := s.maxAssignedID(ctx)
	if err != nil {
		return err
	}

	// $setOnInsert keeps a concurrent seeder from clobbering the sequence.
	opts := options.Update().SetUpsert(true)
	_, err = s.counters.UpdateOne(
		ctx,
		bson.M{"_id": biodataSeq},
		bson.M{"$setOnInsert": bson.M{"seq": max}},
		opts,
	)
	return err
}

func (s *BiodataStore) maxAssignedID(ctx context.Context) (int64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "biodataId", Value: -1}})

	var last models.Biodata
	err := s.biodatas.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return last.BiodataID, nil
}

func (s *BiodataStore) Insert(ctx context.Context, b *models.Biodata) error {
	_, err := s.biodatas.InsertOne(ctx, b)
	return err
}

// Update merges the supplied fields into the existing document with $set
// semantics; biodataId and createdAt are never part of the set document.
func (s *BiodataStore) Update(ctx context.Context, b *models.Biodata) error {
	filter := bson.M{"contactEmail": b.ContactEmail}
	update := bson.M{"$set": bson.M{
		"biodataType":           b.BiodataType,
		"name":                  b.Name,
		"profileImageUrl":       b.ProfileImageURL,
		"dateOfBirth":           b.DateOfBirth,
		"height":                b.Height,
		"weight":                b.Weight,
		"age":                   b.Age,
		"occupation":            b.Occupation,
		"race":                  b.Race,
		"fathersName":           b.FathersName,
		"mothersName":           b.MothersName,
		"permanentDivision":     b.PermanentDivision,
		"presentDivision":       b.PresentDivision,
		"expectedPartnerAge":    b.ExpectedPartnerAge,
		"expectedPartnerHeight": b.ExpectedPartnerHeight,
		"expectedPartnerWeight": b.ExpectedPartnerWeight,
		"mobileNumber":          b.MobileNumber,
		"updatedAt":             b.UpdatedAt,
	}}

	_, err := s.biodatas.UpdateOne(ctx, filter, update)
	return err
}

// Filter narrows the biodata listing. Zero values mean "no constraint".
type Filter struct {
	BiodataType string
	Division    string
	MinAge      int
	MaxAge      int
}

func (f Filter) query() bson.M {
	query := bson.M{}
	if f.BiodataType != "" {
		query["biodataType"] = f.BiodataType
	}
	if f.Division != "" {
		query["permanentDivision"] = f.Division
	}
	age := bson.M{}
	if f.MinAge > 0 {
		age["$gte"] = f.MinAge
	}
	if f.MaxAge > 0 {
		age["$lte"] = f.MaxAge
	}
	if len(age) > 0 {
		query["age"] = age
	}
	return query
}

func (s *BiodataStore) All(ctx context.Context, f Filter) ([]models.Biodata, error) {
	cursor, err := s.biodatas.Find(ctx, f.query())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	biodatas := []models.Biodata{}
	if err := cursor.All(ctx, &biodatas); err != nil {
		return nil, err
	}
	return biodatas, nil
}

// Similar returns the most recent biodatas of the same type, excluding the
// record the match is being computed for.
func (s *BiodataStore) Similar(ctx context.Context, biodataType string, excludeID int64, limit int64) ([]models.Biodata, error) {
	query := bson.M{
		"biodataType": biodataType,
		"biodataId":   bson.M{"$ne": excludeID},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.biodatas.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	biodatas := []models.Biodata{}
	if err := cursor.All(ctx, &biodatas); err != nil {
		return nil, err
	}
	return biodatas, nil
}

func (s *BiodataStore) TotalCount(ctx context.Context) (int64, error) {
	return s.biodatas.EstimatedDocumentCount(ctx)
}

func (s *BiodataStore) CountByType(ctx context.Context, biodataType string) (int64, error) {
	return s.biodatas.CountDocuments(ctx, bson.M{"biodataType": biodataType})
}
