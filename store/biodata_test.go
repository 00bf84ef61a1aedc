package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson"
)

func TestFilterQuery(t *testing.T) {
	cases := []struct {
		name   string
		filter Filter
		want   bson.M
	}{
		{
			name:   "empty filter matches everything",
			filter: Filter{},
			want:   bson.M{},
		},
		{
			name:   "type only",
			filter: Filter{BiodataType: "Male"},
			want:   bson.M{"biodataType": "Male"},
		},
		{
			name:   "division only",
			filter: Filter{Division: "Dhaka"},
			want:   bson.M{"permanentDivision": "Dhaka"},
		},
		{
			name:   "age range",
			filter: Filter{MinAge: 20, MaxAge: 30},
			want:   bson.M{"age": bson.M{"$gte": 20, "$lte": 30}},
		},
		{
			name:   "open-ended age",
			filter: Filter{MinAge: 25},
			want:   bson.M{"age": bson.M{"$gte": 25}},
		},
		{
			name:   "combined",
			filter: Filter{BiodataType: "Female", Division: "Sylhet", MaxAge: 35},
			want: bson.M{
				"biodataType":       "Female",
				"permanentDivision": "Sylhet",
				"age":               bson.M{"$lte": 35},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.query())
		})
	}
}
