package system

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/shared/optional"
)

type CreateSystemReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Owner       *string `json:"owner"`
	Importance  string  `json:"importance"`
	ParentID    *string `json:"parent_id"`
}

func (r CreateSystemReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Importance,
			validation.Required.Error("importance is required"),
			validation.In("low", "medium", "high").Error("importance must be one of low, medium, high"),
		),
	)
}

// UpdateSystemReq is a partial update. `"parent_id": null` moves the
// system to the root; omitting it leaves the parent unchanged.
type UpdateSystemReq struct {
	Name        optional.Value[string]  `json:"name"`
	Description optional.Value[*string] `json:"description"`
	Location    optional.Value[*string] `json:"location"`
	Owner       optional.Value[*string] `json:"owner"`
	Importance  optional.Value[string]  `json:"importance"`
	ParentID    optional.Value[*string] `json:"parent_id"`
}

func (r UpdateSystemReq) Validate() error {
	if r.Name.IsSet() {
		if err := validation.Validate(r.Name.Get(),
			validation.Required.Error("name cannot be empty"),
			validation.Length(1, 255),
		); err != nil {
			return err
		}
	}
	if r.Importance.IsSet() {
		return validation.Validate(r.Importance.Get(),
			validation.Required.Error("importance cannot be empty"),
			validation.In("low", "medium", "high").Error("importance must be one of low, medium, high"),
		)
	}
	return nil
}

// ListFilter narrows List by parent. MatchesNone marks an invalid id in
// a filter position, which matches nothing.
type ListFilter struct {
	ParentID    *bson.ObjectID
	RootsOnly   bool
	MatchesNone bool
}
