package unit

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Unit is a dimension entity referenced by catalogue category properties.
// Code is derived from Value and unique across the collection.
type Unit struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Value        string        `bson:"value" json:"value"`
	Code         string        `bson:"code" json:"code"`
	CreatedTime  time.Time     `bson:"created_time" json:"created_time"`
	ModifiedTime time.Time     `bson:"modified_time" json:"modified_time"`
}
