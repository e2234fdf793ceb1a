package catalogueitem

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/cataloguecategory"
	"inventory-backend/internal/shared/apperrors"
)

// SuppliedProperty is a caller-provided (property id, value) pair before
// validation against the category schema.
type SuppliedProperty struct {
	ID    bson.ObjectID
	Value any
}

// ProcessProperties validates supplied values against the category's
// property definitions and expands them into the stored PropertyValue
// list. The output matches the definitions in length and order; omitted
// non-mandatory properties get a null value, and supplied ids not in the
// schema are dropped.
func ProcessProperties(definitions []cataloguecategory.Property, supplied []SuppliedProperty) ([]PropertyValue, error) {
	suppliedByID := make(map[bson.ObjectID]SuppliedProperty, len(supplied))
	for _, sp := range supplied {
		suppliedByID[sp.ID] = sp
	}

	values := make([]PropertyValue, 0, len(definitions))
	for i := range definitions {
		def := &definitions[i]

		sp, ok := suppliedByID[def.ID]
		if !ok {
			if def.Mandatory {
				return nil, apperrors.MissingMandatoryProperty(
					fmt.Sprintf("Missing mandatory property with ID: '%s'", def.ID.Hex()))
			}
			values = append(values, newPropertyValue(def, nil))
			continue
		}

		if sp.Value == nil {
			if def.Mandatory {
				return nil, apperrors.MissingMandatoryProperty(
					fmt.Sprintf("Mandatory property with ID '%s' cannot be None", def.ID.Hex()))
			}
			values = append(values, newPropertyValue(def, nil))
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

		values = append(values, newPropertyValue(def, sp.Value))
	}

	return values, nil
}

// NewPropertyValue derives a stored value from its definition, caching
// the definition's name and unit.
func NewPropertyValue(def *cataloguecategory.Property, value any) PropertyValue {
	return newPropertyValue(def, value)
}

func newPropertyValue(def *cataloguecategory.Property, value any) PropertyValue {
	return PropertyValue{
		ID:     def.ID,
		Name:   def.Name,
		Value:  value,
		Unit:   def.Unit,
		UnitID: def.UnitID,
	}
}

// SamePropertySet reports whether two property-value lists carry the
// same property ids in the same order. Used to decide whether a category
// move needs a fresh properties list.
func SamePropertySet(a []cataloguecategory.Property, b []PropertyValue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
