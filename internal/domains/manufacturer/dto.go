package manufacturer

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type AddressReq struct {
	AddressLine string `json:"address_line"`
	Town        string `json:"town"`
	County      string `json:"county"`
	Country     string `json:"country"`
	Postcode    string `json:"postcode"`
}

func (r AddressReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AddressLine, validation.Required.Error("address_line is required")),
		validation.Field(&r.Country, validation.Required.Error("country is required")),
		validation.Field(&r.Postcode, validation.Required.Error("postcode is required")),
	)
}

type CreateManufacturerReq struct {
	Name      string     `json:"name"`
	URL       *string    `json:"url"`
	Address   AddressReq `json:"address"`
	Telephone *string    `json:"telephone"`
}

func (r CreateManufacturerReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.URL, is.URL),
		validation.Field(&r.Address, validation.Required),
	)
}

// UpdateManufacturerReq is a partial update; nil fields are untouched.
type UpdateManufacturerReq struct {
	Name      *string           `json:"name"`
	URL       *string           `json:"url"`
	Address   *UpdateAddressReq `json:"address"`
	Telephone *string           `json:"telephone"`
}

type UpdateAddressReq struct {
	AddressLine *string `json:"address_line"`
	Town        *string `json:"town"`
	County      *string `json:"county"`
	Country     *string `json:"country"`
	Postcode    *string `json:"postcode"`
}

func (r UpdateManufacturerReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty.Error("name cannot be empty"), validation.Length(0, 255)),
		validation.Field(&r.URL, is.URL),
	)
}
