package cataloguecategory

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/shared/optional"
	"inventory-backend/internal/shared/utils"
)

type AllowedValuesReq struct {
	Type   string `json:"type"`
	Values []any  `json:"values"`
}

func (r *AllowedValuesReq) ToModel() *AllowedValues {
	if r == nil {
		return nil
	}
	return &AllowedValues{Type: r.Type, Values: r.Values}
}

type PropertyReq struct {
	Name          string            `json:"name"`
	Type          string            `json:"type"`
	UnitID        *string           `json:"unit_id"`
	Mandatory     bool              `json:"mandatory"`
	AllowedValues *AllowedValuesReq `json:"allowed_values"`
}

func (r PropertyReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("property name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Type,
			validation.Required.Error("property type is required"),
			validation.In("string", "number", "boolean").Error("property type must be one of string, number, boolean"),
		),
	)
}

// ToModel converts the request shape; the schema engine then validates
// the result. The property id is assigned by the service.
func (r PropertyReq) ToModel() (Property, error) {
	p := Property{
		Name:          r.Name,
		Type:          PropertyType(r.Type),
		Mandatory:     r.Mandatory,
		AllowedValues: r.AllowedValues.ToModel(),
	}
	if r.UnitID != nil {
		unitID, err := utils.ParseObjectID(*r.UnitID)
		if err != nil {
			return Property{}, err
		}
		p.UnitID = &unitID
	}
	return p, nil
}

type CreateCatalogueCategoryReq struct {
	Name       string        `json:"name"`
	IsLeaf     bool          `json:"is_leaf"`
	ParentID   *string       `json:"parent_id"`
	Properties []PropertyReq `json:"properties"`
}

func (r CreateCatalogueCategoryReq) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
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

// UpdateCatalogueCategoryReq is a partial update. Optional fields
// distinguish absence from explicit null: `"parent_id": null` moves the
// category to the root, while omitting it leaves the parent unchanged.
type UpdateCatalogueCategoryReq struct {
	Name       optional.Value[string]        `json:"name"`
	IsLeaf     optional.Value[bool]          `json:"is_leaf"`
	ParentID   optional.Value[*string]       `json:"parent_id"`
	Properties optional.Value[[]PropertyReq] `json:"properties"`
}

func (r UpdateCatalogueCategoryReq) Validate() error {
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

// CreatePropertyReq adds a property to an existing leaf category.
// DefaultValue seeds the new PropertyValue pushed into every catalogue
// item and item under the category.
type CreatePropertyReq struct {
	Name          string              `json:"name"`
	Type          string              `json:"type"`
	UnitID        *string             `json:"unit_id"`
	Mandatory     bool                `json:"mandatory"`
	AllowedValues *AllowedValuesReq   `json:"allowed_values"`
	DefaultValue  optional.Value[any] `json:"default_value"`
}

func (r CreatePropertyReq) Validate() error {
	return PropertyReq{Name: r.Name, Type: r.Type}.Validate()
}

func (r CreatePropertyReq) ToModel() (Property, error) {
	return PropertyReq{
		Name:          r.Name,
		Type:          r.Type,
		UnitID:        r.UnitID,
		Mandatory:     r.Mandatory,
		AllowedValues: r.AllowedValues,
	}.ToModel()
}

// UpdatePropertyReq patches a property definition. Only the name and
// allowed_values may change; type, unit and mandatory are immutable once
// items may depend on them.
type UpdatePropertyReq struct {
	Name          optional.Value[string]            `json:"name"`
	AllowedValues optional.Value[*AllowedValuesReq] `json:"allowed_values"`
}

func (r UpdatePropertyReq) Validate() error {
	if r.Name.IsSet() {
		return validation.Validate(r.Name.Get(),
			validation.Required.Error("property name cannot be empty"),
			validation.Length(1, 255),
		)
	}
	return nil
}

// ListFilter narrows List by parent. MatchesNone marks an invalid id in
// a filter position, which matches nothing rather than erroring.
type ListFilter struct {
	ParentID    *bson.ObjectID
	RootsOnly   bool
	MatchesNone bool
}
