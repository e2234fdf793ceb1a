package usagestatus

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UsageStatus is a dimension entity referenced by items. Code is derived
// from Value and unique across the collection.
type UsageStatus struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Value        string        `bson:"value" json:"value"`
	Code         string        `bson:"code" json:"code"`
	CreatedTime  time.Time     `bson:"created_time" json:"created_time"`
	ModifiedTime time.Time     `bson:"modified_time" json:"modified_time"`
}
