package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/cataloguecategory"
	"inventory-backend/internal/domains/catalogueitem"
	"inventory-backend/internal/shared/apperrors"
)

func testSchema() []cataloguecategory.Property {
	return []cataloguecategory.Property{
		{
			ID:        bson.NewObjectID(),
			Name:      "Resolution",
			Type:      cataloguecategory.PropertyTypeNumber,
			Mandatory: true,
		},
		{
			ID:   bson.NewObjectID(),
			Name: "Colour",
			Type: cataloguecategory.PropertyTypeString,
		},
	}
}

func TestProcessOverrides(t *testing.T) {
	defs := testSchema()

	t.Run("absent properties are inherited, not errors", func(t *testing.T) {
		overrides, err := ProcessOverrides(defs, nil)
		require.NoError(t, err)
		assert.Empty(t, overrides)
	})

	t.Run("explicit null on mandatory rejected", func(t *testing.T) {
		_, err := ProcessOverrides(defs, []catalogueitem.SuppliedProperty{
			{ID: defs[0].ID, Value: nil},
		})
		var missing apperrors.MissingMandatoryPropertyError
		require.ErrorAs(t, err, &missing)
	})

	t.Run("explicit null on non-mandatory kept", func(t *testing.T) {
		overrides, err := ProcessOverrides(defs, []catalogueitem.SuppliedProperty{
			{ID: defs[1].ID, Value: nil},
		})
		require.NoError(t, err)
		require.Len(t, overrides, 1)
		assert.Equal(t, defs[1].ID, overrides[0].ID)
		assert.Nil(t, overrides[0].Value)
	})

	t.Run("type mismatch rejected", func(t *testing.T) {
		_, err := ProcessOverrides(defs, []catalogueitem.SuppliedProperty{
			{ID: defs[0].ID, Value: "high"},
		})
		var invalid apperrors.InvalidPropertyValueError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("unknown ids dropped", func(t *testing.T) {
		overrides, err := ProcessOverrides(defs, []catalogueitem.SuppliedProperty{
			{ID: bson.NewObjectID(), Value: "stray"},
		})
		require.NoError(t, err)
		assert.Empty(t, overrides)
	})
}

func TestMergeProperties(t *testing.T) {
	id1 := bson.NewObjectID()
	id2 := bson.NewObjectID()

	parent := []catalogueitem.PropertyValue{
		{ID: id1, Name: "Resolution", Value: 12.0},
		{ID: id2, Name: "Colour", Value: "red"},
	}
	overrides := []catalogueitem.PropertyValue{
		{ID: id2, Name: "Colour", Value: "green"},
	}

	merged := MergeProperties(parent, overrides)
	require.Len(t, merged, 2)
	assert.Equal(t, 12.0, merged[0].Value)
	assert.Equal(t, "green", merged[1].Value)

	// Parent untouched by the merge.
	assert.Equal(t, "red", parent[1].Value)

	// No overrides passes the parent values through.
	assert.Equal(t, parent, MergeProperties(parent, nil))
}
