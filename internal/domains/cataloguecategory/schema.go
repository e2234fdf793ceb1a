package cataloguecategory

import (
	"fmt"
	"strings"

	"inventory-backend/internal/shared/apperrors"
)

// The property schema engine: standalone validation of a definition,
// in-context validation within a category, default-value checks for
// property creation, and the update rules for allowed_values.

// NumberValue normalizes a dynamic value to float64. BSON reads hand
// back int32/int64 where JSON gave float64. Booleans never count as
// numbers.
func NumberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// ValueMatchesType is the table switch deciding whether a dynamic value
// conforms to a property's base type. Null never reaches here; callers
// treat it separately.
func ValueMatchesType(t PropertyType, v any) bool {
	switch t {
	case PropertyTypeString:
		_, ok := v.(string)
		return ok
	case PropertyTypeNumber:
		_, ok := NumberValue(v)
		return ok
	case PropertyTypeBoolean:
		_, ok := v.(bool)
		return ok
	}
	return false
}

// ValueInAllowedList checks membership of a non-null value in a list
// constraint. String comparison here is case-sensitive, unlike the
// duplicate detection applied at definition time.
func ValueInAllowedList(av *AllowedValues, v any) bool {
	for _, allowed := range av.Values {
		if dynamicEqual(allowed, v) {
			return true
		}
	}
	return false
}

func dynamicEqual(a, b any) bool {
	if an, ok := NumberValue(a); ok {
		bn, ok := NumberValue(b)
		return ok && an == bn
	}
	return a == b
}

// FormatAllowedValues renders the list for error details, e.g. "1, 2, 3".
func FormatAllowedValues(av *AllowedValues) string {
	parts := make([]string, len(av.Values))
	for i, v := range av.Values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(parts, ", ")
}

// ValidateDefinition applies the standalone rules to a single property
// definition.
func ValidateDefinition(p *Property) error {
	if !p.Type.Valid() {
		return apperrors.InvalidPropertyDefinition(
			fmt.Sprintf("Invalid property type: %s", p.Type))
	}

	if p.Type == PropertyTypeBoolean {
		if p.UnitID != nil {
			return apperrors.InvalidPropertyDefinition(
				fmt.Sprintf("Unit not allowed for boolean property '%s'", p.Name))
		}
		if p.AllowedValues != nil {
			return apperrors.InvalidPropertyDefinition(
				fmt.Sprintf("allowed_values not allowed for boolean property '%s'", p.Name))
		}
	}

	if p.AllowedValues != nil {
		if err := validateAllowedValues(p.Type, p.AllowedValues); err != nil {
			return err
		}
	}

	return nil
}

func validateAllowedValues(t PropertyType, av *AllowedValues) error {
	if av.Type != AllowedValuesTypeList {
		return apperrors.InvalidPropertyDefinition(
			fmt.Sprintf("Unrecognized allowed_values type: %s", av.Type))
	}
	if len(av.Values) == 0 {
		return apperrors.InvalidPropertyDefinition(
			"allowed_values of type 'list' must contain at least one value")
	}

	seen := make(map[any]bool, len(av.Values))
	for _, v := range av.Values {
		if !ValueMatchesType(t, v) {
			return apperrors.InvalidPropertyDefinition(
				"allowed_values of type 'list' must only contain values of the same type as the property itself")
		}
		key := duplicateKey(v)
		if seen[key] {
			return apperrors.InvalidPropertyDefinition(
				fmt.Sprintf("allowed_values of type 'list' contains a duplicate value: %v", v))
		}
		seen[key] = true
	}

	return nil
}

// duplicateKey folds values for duplicate detection: strings compare
// case-insensitively, numbers by numeric value.
func duplicateKey(v any) any {
	if s, ok := v.(string); ok {
		return strings.ToLower(s)
	}
	if n, ok := NumberValue(v); ok {
		return n
	}
	return v
}

// ValidateDefinitions applies the in-context rules to a category's full
// property list: per-definition standalone validation plus name
// uniqueness (exact, case-sensitive match).
func ValidateDefinitions(properties []Property) error {
	names := make(map[string]bool, len(properties))
	for i := range properties {
		p := &properties[i]
		if names[p.Name] {
			return apperrors.DuplicatePropertyName(
				fmt.Sprintf("Duplicate property name: %s", p.Name))
		}
		names[p.Name] = true

		if err := ValidateDefinition(p); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDefaultValue applies the default-value rules used when adding
// a property to an existing category.
func ValidateDefaultValue(p *Property, defaultValue any) error {
	if defaultValue == nil {
		if p.Mandatory {
			return apperrors.InvalidPropertyDefinition(
				"Cannot add a mandatory property without a default value")
		}
		return nil
	}

	if !ValueMatchesType(p.Type, defaultValue) {
		return apperrors.InvalidPropertyValue(
			fmt.Sprintf("Default value has an invalid type: expected %s", p.Type))
	}

	if p.AllowedValues != nil && !ValueInAllowedList(p.AllowedValues, defaultValue) {
		return apperrors.InvalidPropertyValue(
			fmt.Sprintf("Default value is not one of the allowed values. Expected one of %s.",
				FormatAllowedValues(p.AllowedValues)))
	}

	return nil
}

// ValidateAllowedValuesUpdate applies the constraint-widening rules when
// editing an existing property. The new list must be a superset of the
// old one; order is irrelevant.
func ValidateAllowedValuesUpdate(oldAV, newAV *AllowedValues) error {
	switch {
	case oldAV == nil && newAV == nil:
		return nil
	case oldAV == nil:
		return apperrors.InvalidAction("Cannot add allowed_values to an existing property")
	case newAV == nil:
		return apperrors.InvalidAction("Cannot remove allowed_values from an existing property")
	case oldAV.Type != newAV.Type:
		return apperrors.InvalidAction("Cannot change the allowed_values type of an existing property")
	}

	for _, existing := range oldAV.Values {
		found := false
		for _, v := range newAV.Values {
			if dynamicEqual(existing, v) {
				found = true
				break
			}
		}
		if !found {
			return apperrors.InvalidAction(
				"Cannot modify or remove existing values of allowed_values, only new values may be added")
		}
	}

	return nil
}
