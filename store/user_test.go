package store

import (
	"testing"

	"truebond/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func stageValue(t *testing.T, stage bson.D, name string) interface{} {
	t.Helper()
	require.Len(t, stage, 1)
	require.Equal(t, name, stage[0].Key)
	return stage[0].Value
}

func TestPremiumProfilesPipelineShape(t *testing.T) {
	pipeline := premiumProfilesPipeline(1)
	require.Len(t, pipeline, 5)

	match := stageValue(t, pipeline[0], "$match").(bson.D)
	assert.Equal(t, bson.D{{Key: "role", Value: models.RolePremium}}, match)

	lookup := stageValue(t, pipeline[1], "$lookup").(bson.D)
	assert.Equal(t, bson.D{
		{Key: "from", Value: "biodatas"},
		{Key: "localField", Value: "email"},
		{Key: "foreignField", Value: "contactEmail"},
		{Key: "as", Value: "biodata"},
	}, lookup)

	// Strict unwind: join misses are dropped in this view.
	unwind := stageValue(t, pipeline[2], "$unwind")
	assert.Equal(t, "$biodata", unwind)

	sort := stageValue(t, pipeline[3], "$sort").(bson.D)
	assert.Equal(t, bson.D{{Key: "biodata.age", Value: 1}}, sort)

	project := stageValue(t, pipeline[4], "$project").(bson.D)
	fields := map[string]interface{}{}
	for _, e := range project {
		fields[e.Key] = e.Value
	}
	assert.Equal(t, "$biodata._id", fields["_id"])
	assert.Equal(t, 1, fields["email"])
	assert.Equal(t, "$biodata.age", fields["age"])
	assert.Equal(t, "$biodata.biodataId", fields["biodataId"])
	assert.Equal(t, "$biodata.occupation", fields["occupation"])
	assert.Equal(t, "$biodata.permanentDivision", fields["permanentDivision"])
	assert.Equal(t, "$biodata.profileImageUrl", fields["profileImageUrl"])
	assert.Equal(t, "$biodata.biodataType", fields["biodataType"])
	assert.Equal(t, "$biodata.name", fields["name"])
}

func TestPremiumProfilesPipelineSortDirection(t *testing.T) {
	asc := premiumProfilesPipeline(1)
	desc := premiumProfilesPipeline(-1)

	assert.Equal(t, bson.D{{Key: "biodata.age", Value: 1}}, stageValue(t, asc[3], "$sort"))
	assert.Equal(t, bson.D{{Key: "biodata.age", Value: -1}}, stageValue(t, desc[3], "$sort"))
}

func TestRequestedPremiumPipelinePreservesJoinMisses(t *testing.T) {
	pipeline := requestedPremiumPipeline()
	require.Len(t, pipeline, 4)

	match := stageValue(t, pipeline[0], "$match").(bson.D)
	assert.Equal(t, bson.D{{Key: "status", Value: models.StatusRequestedPremium}}, match)

	unwind := stageValue(t, pipeline[2], "$unwind").(bson.D)
	assert.Equal(t, bson.D{
		{Key: "path", Value: "$biodata"},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}, unwind, "requesting accounts without a biodata must survive the unwind")
}
