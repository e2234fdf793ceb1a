package catalogueitem

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Repository interface {
	Create(ctx context.Context, c *CatalogueItem) (*CatalogueItem, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*CatalogueItem, error)
	List(ctx context.Context, filter ListFilter) ([]CatalogueItem, error)

	// Update replaces the stored document and refreshes modified_time.
	Update(ctx context.Context, c *CatalogueItem) error
	Delete(ctx context.Context, id bson.ObjectID) error

	// HasItems probes the items collection for children. Bounded
	// existence check.
	HasItems(ctx context.Context, id bson.ObjectID) (bool, error)

	// Exists is a bounded check used for replacement references.
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)

	// ListIDsByCategory feeds the propagation transaction with the ids
	// of catalogue items under a category.
	ListIDsByCategory(ctx context.Context, categoryID bson.ObjectID) ([]bson.ObjectID, error)

	// AddPropertyValue pushes a value onto every catalogue item under a
	// category. modified_time is left alone; only the category's is
	// touched during propagation.
	AddPropertyValue(ctx context.Context, categoryID bson.ObjectID, pv PropertyValue) error

	// RenameProperty rewrites the cached name of a property value across
	// all catalogue items carrying it.
	RenameProperty(ctx context.Context, propertyID bson.ObjectID, name string) error
}
