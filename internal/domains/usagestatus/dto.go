package usagestatus

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateUsageStatusReq struct {
	Value string `json:"value"`
}

func (r CreateUsageStatusReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Value,
			validation.Required.Error("value is required"),
			validation.Length(1, 255),
		),
	)
}
