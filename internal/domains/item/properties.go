package item

import (
	"fmt"

	"inventory-backend/internal/domains/cataloguecategory"
	"inventory-backend/internal/domains/catalogueitem"
	"inventory-backend/internal/shared/apperrors"
)

// ProcessOverrides validates supplied overrides against the governing
// category schema. Unlike catalogue items, an absent property is not an
// error, since the value is inherited from the parent; an explicit null
// on a mandatory property still is. The result keeps the schema order,
// restricted to the supplied ids.
func ProcessOverrides(definitions []cataloguecategory.Property, supplied []catalogueitem.SuppliedProperty) ([]catalogueitem.PropertyValue, error) {
	suppliedByID := make(map[string]catalogueitem.SuppliedProperty, len(supplied))
	for _, sp := range supplied {
		suppliedByID[sp.ID.Hex()] = sp
	}

	overrides := make([]catalogueitem.PropertyValue, 0, len(supplied))
	for i := range definitions {
		def := &definitions[i]

		sp, ok := suppliedByID[def.ID.Hex()]
		if !ok {
			continue
		}

		if sp.Value == nil {
			if def.Mandatory {
				return nil, apperrors.MissingMandatoryProperty(
					fmt.Sprintf("Mandatory property with ID '%s' cannot be None", def.ID.Hex()))
			}
			overrides = append(overrides, catalogueitem.NewPropertyValue(def, nil))
			continue
		}

		if !cataloguecategory.ValueMatchesType(def.Type, sp.Value) {
			return nil, apperrors.InvalidPropertyValue(
				fmt.Sprintf("Invalid value type for property with ID '%s'. Expected type: %s.",
					def.ID.Hex(), def.Type))
		}

		if def.AllowedValues != nil && !cataloguecategory.ValueInAllowedList(def.AllowedValues, sp.Value) {
			return nil, apperrors.InvalidPropertyValue(
				fmt.Sprintf("Invalid value for property with ID '%s'. Expected one of %s.",
					def.ID.Hex(), cataloguecategory.FormatAllowedValues(def.AllowedValues)))
		}

		overrides = append(overrides, catalogueitem.NewPropertyValue(def, sp.Value))
	}

	return overrides, nil
}
