package system

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Importance grades how critical a system is to operations.
type Importance string

const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

func (i Importance) Valid() bool {
	switch i {
	case ImportanceLow, ImportanceMedium, ImportanceHigh:
		return true
	}
	return false
}

// System is a node of the physical-location tree items are placed in.
// Any node may hold items and child systems alike.
type System struct {
	ID           bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Code         string         `bson:"code" json:"code"`
	ParentID     *bson.ObjectID `bson:"parent_id" json:"parent_id"`
	Description  *string        `bson:"description" json:"description"`
	Location     *string        `bson:"location" json:"location"`
	Owner        *string        `bson:"owner" json:"owner"`
	Importance   Importance     `bson:"importance" json:"importance"`
	CreatedTime  time.Time      `bson:"created_time" json:"created_time"`
	ModifiedTime time.Time      `bson:"modified_time" json:"modified_time"`
}
