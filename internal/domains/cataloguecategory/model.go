package cataloguecategory

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PropertyType is the base type of a property definition. Boolean is a
// distinct type: a bool value never counts as a number.
type PropertyType string

const (
	PropertyTypeString  PropertyType = "string"
	PropertyTypeNumber  PropertyType = "number"
	PropertyTypeBoolean PropertyType = "boolean"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeString, PropertyTypeNumber, PropertyTypeBoolean:
		return true
	}
	return false
}

// AllowedValuesTypeList is the only defined allowed_values variant.
const AllowedValuesTypeList = "list"

// AllowedValues is a tagged variant constraining a property's values.
type AllowedValues struct {
	Type   string `bson:"type" json:"type"`
	Values []any  `bson:"values" json:"values"`
}

// Property is a typed attribute definition owned by a leaf catalogue
// category. Unit caches the referenced unit's value; the propagation
// coordinator keeps the caches on items consistent.
type Property struct {
	ID            bson.ObjectID  `bson:"_id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Type          PropertyType   `bson:"type" json:"type"`
	UnitID        *bson.ObjectID `bson:"unit_id" json:"unit_id"`
	Unit          *string        `bson:"unit" json:"unit"`
	Mandatory     bool           `bson:"mandatory" json:"mandatory"`
	AllowedValues *AllowedValues `bson:"allowed_values" json:"allowed_values"`
}

// CatalogueCategory is a node of the taxonomy tree. Leaves hold
// catalogue items and own the property schema; non-leaf categories have
// an empty properties list.
type CatalogueCategory struct {
	ID           bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Code         string         `bson:"code" json:"code"`
	IsLeaf       bool           `bson:"is_leaf" json:"is_leaf"`
	ParentID     *bson.ObjectID `bson:"parent_id" json:"parent_id"`
	Properties   []Property     `bson:"properties" json:"properties"`
	CreatedTime  time.Time      `bson:"created_time" json:"created_time"`
	ModifiedTime time.Time      `bson:"modified_time" json:"modified_time"`
}

// PropertyByID locates a property definition. Matching is by id, never
// by name: the id back-reference is the source of truth for identity.
func (c *CatalogueCategory) PropertyByID(id bson.ObjectID) *Property {
	for i := range c.Properties {
		if c.Properties[i].ID == id {
			return &c.Properties[i]
		}
	}
	return nil
}
