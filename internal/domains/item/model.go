package item

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/catalogueitem"
)

// Item is a physical instance of a catalogue item, placed in a system.
// UsageStatus caches the referenced usage status value. The stored
// properties are overrides only; reads merge them onto the parent
// catalogue item's values, one layer deep.
type Item struct {
	ID                  bson.ObjectID                 `bson:"_id,omitempty" json:"id"`
	CatalogueItemID     bson.ObjectID                 `bson:"catalogue_item_id" json:"catalogue_item_id"`
	SystemID            bson.ObjectID                 `bson:"system_id" json:"system_id"`
	UsageStatusID       bson.ObjectID                 `bson:"usage_status_id" json:"usage_status_id"`
	UsageStatus         string                        `bson:"usage_status" json:"usage_status"`
	PurchaseOrderNumber *string                       `bson:"purchase_order_number" json:"purchase_order_number"`
	IsDefective         bool                          `bson:"is_defective" json:"is_defective"`
	WarrantyEndDate     *time.Time                    `bson:"warranty_end_date" json:"warranty_end_date"`
	AssetNumber         *string                       `bson:"asset_number" json:"asset_number"`
	SerialNumber        *string                       `bson:"serial_number" json:"serial_number"`
	DeliveredDate       *time.Time                    `bson:"delivered_date" json:"delivered_date"`
	Notes               *string                       `bson:"notes" json:"notes"`
	Properties          []catalogueitem.PropertyValue `bson:"properties" json:"properties"`
	CreatedTime         time.Time                     `bson:"created_time" json:"created_time"`
	ModifiedTime        time.Time                     `bson:"modified_time" json:"modified_time"`
}

// MergeProperties overlays the item's overrides onto the parent
// catalogue item's property values. The result follows the parent's
// order; inheritance never reaches back to the category.
func MergeProperties(parent []catalogueitem.PropertyValue, overrides []catalogueitem.PropertyValue) []catalogueitem.PropertyValue {
	overrideByID := make(map[bson.ObjectID]catalogueitem.PropertyValue, len(overrides))
	for _, pv := range overrides {
		overrideByID[pv.ID] = pv
	}

	merged := make([]catalogueitem.PropertyValue, len(parent))
	for i, pv := range parent {
		if override, ok := overrideByID[pv.ID]; ok {
			merged[i] = override
		} else {
			merged[i] = pv
		}
	}
	return merged
}
