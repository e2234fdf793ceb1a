package manufacturer

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Address is embedded in the manufacturer document.
type Address struct {
	AddressLine string `bson:"address_line" json:"address_line"`
	Town        string `bson:"town" json:"town"`
	County      string `bson:"county" json:"county"`
	Country     string `bson:"country" json:"country"`
	Postcode    string `bson:"postcode" json:"postcode"`
}

// Manufacturer is a dimension entity referenced by catalogue items. Code
// is derived from Name and unique across the collection.
type Manufacturer struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Code         string        `bson:"code" json:"code"`
	URL          *string       `bson:"url" json:"url"`
	Address      Address       `bson:"address" json:"address"`
	Telephone    *string       `bson:"telephone" json:"telephone"`
	CreatedTime  time.Time     `bson:"created_time" json:"created_time"`
	ModifiedTime time.Time     `bson:"modified_time" json:"modified_time"`
}
