package catalogueitem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/cataloguecategory"
	"inventory-backend/internal/shared/apperrors"
)

func testSchema() []cataloguecategory.Property {
	mm := "mm"
	return []cataloguecategory.Property{
		{
			ID:        bson.NewObjectID(),
			Name:      "Resolution",
			Type:      cataloguecategory.PropertyTypeNumber,
			Unit:      &mm,
			Mandatory: true,
		},
		{
			ID:   bson.NewObjectID(),
			Name: "Colour",
			Type: cataloguecategory.PropertyTypeString,
			AllowedValues: &cataloguecategory.AllowedValues{
				Type:   cataloguecategory.AllowedValuesTypeList,
				Values: []any{"red", "green"},
			},
		},
		{
			ID:   bson.NewObjectID(),
			Name: "Broken",
			Type: cataloguecategory.PropertyTypeBoolean,
		},
	}
}

func TestProcessProperties(t *testing.T) {
	defs := testSchema()

	t.Run("fills omitted non-mandatory with null", func(t *testing.T) {
		values, err := ProcessProperties(defs, []SuppliedProperty{
			{ID: defs[0].ID, Value: 12.0},
		})
		require.NoError(t, err)
		require.Len(t, values, 3)
		assert.Equal(t, defs[0].ID, values[0].ID)
		assert.Equal(t, 12.0, values[0].Value)
		assert.Equal(t, "mm", *values[0].Unit)
		assert.Nil(t, values[1].Value)
		assert.Equal(t, "Broken", values[2].Name)
		assert.Nil(t, values[2].Value)
	})

	t.Run("missing mandatory", func(t *testing.T) {
		_, err := ProcessProperties(defs, nil)
		var missing apperrors.MissingMandatoryPropertyError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t,
			fmt.Sprintf("Missing mandatory property with ID: '%s'", defs[0].ID.Hex()),
			missing.Detail)
	})

	t.Run("null mandatory", func(t *testing.T) {
		_, err := ProcessProperties(defs, []SuppliedProperty{
			{ID: defs[0].ID, Value: nil},
		})
		var missing apperrors.MissingMandatoryPropertyError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t,
			fmt.Sprintf("Mandatory property with ID '%s' cannot be None", defs[0].ID.Hex()),
			missing.Detail)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := ProcessProperties(defs, []SuppliedProperty{
			{ID: defs[0].ID, Value: "twelve"},
		})
		var invalid apperrors.InvalidPropertyValueError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t,
			fmt.Sprintf("Invalid value type for property with ID '%s'. Expected type: number.", defs[0].ID.Hex()),
			invalid.Detail)
	})

	t.Run("outside allowed list", func(t *testing.T) {
		_, err := ProcessProperties(defs, []SuppliedProperty{
			{ID: defs[0].ID, Value: 12.0},
			{ID: defs[1].ID, Value: "blue"},
		})
		var invalid apperrors.InvalidPropertyValueError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t,
			fmt.Sprintf("Invalid value for property with ID '%s'. Expected one of red, green.", defs[1].ID.Hex()),
			invalid.Detail)
	})

	t.Run("unknown ids dropped silently", func(t *testing.T) {
		values, err := ProcessProperties(defs, []SuppliedProperty{
			{ID: defs[0].ID, Value: 12.0},
			{ID: bson.NewObjectID(), Value: "stray"},
		})
		require.NoError(t, err)
		assert.Len(t, values, 3)
	})

	t.Run("output follows schema order", func(t *testing.T) {
		values, err := ProcessProperties(defs, []SuppliedProperty{
			{ID: defs[2].ID, Value: true},
			{ID: defs[0].ID, Value: 1.0},
		})
		require.NoError(t, err)
		assert.Equal(t, defs[0].ID, values[0].ID)
		assert.Equal(t, defs[1].ID, values[1].ID)
		assert.Equal(t, defs[2].ID, values[2].ID)
	})
}

func TestSamePropertySet(t *testing.T) {
	defs := testSchema()
	values := []PropertyValue{
		{ID: defs[0].ID}, {ID: defs[1].ID}, {ID: defs[2].ID},
	}
	assert.True(t, SamePropertySet(defs, values))

	// Order matters.
	swapped := []PropertyValue{
		{ID: defs[1].ID}, {ID: defs[0].ID}, {ID: defs[2].ID},
	}
	assert.False(t, SamePropertySet(defs, swapped))
	assert.False(t, SamePropertySet(defs, values[:2]))
}
