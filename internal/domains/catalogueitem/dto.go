package catalogueitem

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/shared/optional"
	"inventory-backend/internal/shared/utils"
)

type PropertyValueReq struct {
	ID    string `json:"id"`
	Value any    `json:"value"`
}

func (r PropertyValueReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required.Error("property id is required")),
	)
}

func (r PropertyValueReq) ToSupplied() (SuppliedProperty, error) {
	id, err := utils.ParseObjectID(r.ID)
	if err != nil {
		return SuppliedProperty{}, err
	}
	return SuppliedProperty{ID: id, Value: r.Value}, nil
}

// ToSupplied parses a request property list into validated id/value
// pairs.
func ToSupplied(reqs []PropertyValueReq) ([]SuppliedProperty, error) {
	supplied := make([]SuppliedProperty, 0, len(reqs))
	for _, r := range reqs {
		sp, err := r.ToSupplied()
		if err != nil {
			return nil, err
		}
		supplied = append(supplied, sp)
	}
	return supplied, nil
}

type CreateCatalogueItemReq struct {
	CatalogueCategoryID string             `json:"catalogue_category_id"`
	ManufacturerID      string             `json:"manufacturer_id"`
	Name                string             `json:"name"`
	Description         *string            `json:"description"`
	CostGBP             float64            `json:"cost_gbp"`
	CostToReworkGBP     *float64           `json:"cost_to_rework_gbp"`
	DaysToReplace       float64            `json:"days_to_replace"`
	DaysToRework        *float64           `json:"days_to_rework"`
	DrawingNumber       *string            `json:"drawing_number"`
	DrawingLink         *string            `json:"drawing_link"`
	ItemModelNumber     *string            `json:"item_model_number"`
	IsObsolete          bool               `json:"is_obsolete"`
	ObsoleteReason      *string            `json:"obsolete_reason"`
	ObsoleteReplacementCatalogueItemID *string `json:"obsolete_replacement_catalogue_item_id"`
	Notes               *string            `json:"notes"`
	Properties          []PropertyValueReq `json:"properties"`
}

func (r CreateCatalogueItemReq) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.CatalogueCategoryID, validation.Required.Error("catalogue_category_id is required")),
		validation.Field(&r.ManufacturerID, validation.Required.Error("manufacturer_id is required")),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.CostGBP, validation.Min(0.0)),
		validation.Field(&r.DaysToReplace, validation.Min(0.0)),
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

// UpdateCatalogueItemReq is a partial update. Optional fields
// distinguish absence from explicit null.
type UpdateCatalogueItemReq struct {
	CatalogueCategoryID optional.Value[string]             `json:"catalogue_category_id"`
	ManufacturerID      optional.Value[string]             `json:"manufacturer_id"`
	Name                optional.Value[string]             `json:"name"`
	Description         optional.Value[*string]            `json:"description"`
	CostGBP             optional.Value[float64]            `json:"cost_gbp"`
	CostToReworkGBP     optional.Value[*float64]           `json:"cost_to_rework_gbp"`
	DaysToReplace       optional.Value[float64]            `json:"days_to_replace"`
	DaysToRework        optional.Value[*float64]           `json:"days_to_rework"`
	DrawingNumber       optional.Value[*string]            `json:"drawing_number"`
	DrawingLink         optional.Value[*string]            `json:"drawing_link"`
	ItemModelNumber     optional.Value[*string]            `json:"item_model_number"`
	IsObsolete          optional.Value[bool]               `json:"is_obsolete"`
	ObsoleteReason      optional.Value[*string]            `json:"obsolete_reason"`
	ObsoleteReplacementCatalogueItemID optional.Value[*string] `json:"obsolete_replacement_catalogue_item_id"`
	Notes               optional.Value[*string]            `json:"notes"`
	Properties          optional.Value[[]PropertyValueReq] `json:"properties"`
}

func (r UpdateCatalogueItemReq) Validate() error {
	if r.Name.IsSet() {
		if err := validation.Validate(r.Name.Get(),
			validation.Required.Error("name cannot be empty"),
			validation.Length(1, 255),
		); err != nil {
			return err
		}
	}
	if r.Properties.IsSet() {
		for _, p := range r.Properties.Get() {
			if err := p.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// ListFilter narrows List by owning category. MatchesNone marks an
// invalid id in a filter position, which matches nothing.
type ListFilter struct {
	CatalogueCategoryID *bson.ObjectID
	MatchesNone         bool
}
