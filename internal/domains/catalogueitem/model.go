package catalogueitem

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PropertyValue is a concrete value for a property defined on the owning
// catalogue category. Name, unit and unit_id are caches of the
// definition; the id back-reference is the identity.
type PropertyValue struct {
	ID     bson.ObjectID  `bson:"_id" json:"id"`
	Name   string         `bson:"name" json:"name"`
	Value  any            `bson:"value" json:"value"`
	Unit   *string        `bson:"unit" json:"unit"`
	UnitID *bson.ObjectID `bson:"unit_id" json:"unit_id"`
}

// CatalogueItem is a purchasable model belonging to a leaf catalogue
// category. Its properties list always mirrors the category schema in
// length and order.
type CatalogueItem struct {
	ID                  bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CatalogueCategoryID bson.ObjectID `bson:"catalogue_category_id" json:"catalogue_category_id"`
	ManufacturerID      bson.ObjectID `bson:"manufacturer_id" json:"manufacturer_id"`
	Name                string        `bson:"name" json:"name"`
	Description         *string       `bson:"description" json:"description"`
	CostGBP             float64       `bson:"cost_gbp" json:"cost_gbp"`
	CostToReworkGBP     *float64      `bson:"cost_to_rework_gbp" json:"cost_to_rework_gbp"`
	DaysToReplace       float64       `bson:"days_to_replace" json:"days_to_replace"`
	DaysToRework        *float64      `bson:"days_to_rework" json:"days_to_rework"`
	DrawingNumber       *string       `bson:"drawing_number" json:"drawing_number"`
	DrawingLink         *string       `bson:"drawing_link" json:"drawing_link"`
	ItemModelNumber     *string       `bson:"item_model_number" json:"item_model_number"`
	IsObsolete          bool          `bson:"is_obsolete" json:"is_obsolete"`
	ObsoleteReason      *string       `bson:"obsolete_reason" json:"obsolete_reason"`

	// ObsoleteReplacementCatalogueItemID must resolve to an existing
	// catalogue item when set.
	ObsoleteReplacementCatalogueItemID *bson.ObjectID `bson:"obsolete_replacement_catalogue_item_id" json:"obsolete_replacement_catalogue_item_id"`

	Notes        *string         `bson:"notes" json:"notes"`
	Properties   []PropertyValue `bson:"properties" json:"properties"`
	CreatedTime  time.Time       `bson:"created_time" json:"created_time"`
	ModifiedTime time.Time       `bson:"modified_time" json:"modified_time"`
}
