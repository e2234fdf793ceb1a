package item

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/catalogueitem"
	"inventory-backend/internal/shared/optional"
)

type CreateItemReq struct {
	CatalogueItemID     string                           `json:"catalogue_item_id"`
	SystemID            string                           `json:"system_id"`
	UsageStatusID       string                           `json:"usage_status_id"`
	PurchaseOrderNumber *string                          `json:"purchase_order_number"`
	IsDefective         bool                             `json:"is_defective"`
	WarrantyEndDate     *time.Time                       `json:"warranty_end_date"`
	AssetNumber         *string                          `json:"asset_number"`
	SerialNumber        *string                          `json:"serial_number"`
	DeliveredDate       *time.Time                       `json:"delivered_date"`
	Notes               *string                          `json:"notes"`
	Properties          []catalogueitem.PropertyValueReq `json:"properties"`
}

func (r CreateItemReq) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.CatalogueItemID, validation.Required.Error("catalogue_item_id is required")),
		validation.Field(&r.SystemID, validation.Required.Error("system_id is required")),
		validation.Field(&r.UsageStatusID, validation.Required.Error("usage_status_id is required")),
	); err != nil {
		return err
	}
	for _, p := range r.Properties {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// UpdateItemReq is a partial update. catalogue_item_id is accepted in
// the shape but may never change once the item exists.
type UpdateItemReq struct {
	CatalogueItemID     optional.Value[string]                          `json:"catalogue_item_id"`
	SystemID            optional.Value[string]                          `json:"system_id"`
	UsageStatusID       optional.Value[string]                          `json:"usage_status_id"`
	PurchaseOrderNumber optional.Value[*string]                         `json:"purchase_order_number"`
	IsDefective         optional.Value[bool]                            `json:"is_defective"`
	WarrantyEndDate     optional.Value[*time.Time]                      `json:"warranty_end_date"`
	AssetNumber         optional.Value[*string]                         `json:"asset_number"`
	SerialNumber        optional.Value[*string]                         `json:"serial_number"`
	DeliveredDate       optional.Value[*time.Time]                      `json:"delivered_date"`
	Notes               optional.Value[*string]                         `json:"notes"`
	Properties          optional.Value[[]catalogueitem.PropertyValueReq] `json:"properties"`
}

func (r UpdateItemReq) Validate() error {
	if r.Properties.IsSet() {
		for _, p := range r.Properties.Get() {
			if err := p.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// ListFilter narrows List by parent catalogue item and/or system.
// MatchesNone marks an invalid id in a filter position.
type ListFilter struct {
	CatalogueItemID *bson.ObjectID
	SystemID        *bson.ObjectID
	MatchesNone     bool
}
