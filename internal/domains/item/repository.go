package item

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/catalogueitem"
)

type Repository interface {
	Create(ctx context.Context, i *Item) (*Item, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*Item, error)
	List(ctx context.Context, filter ListFilter) ([]Item, error)

	// Update replaces the stored document and refreshes modified_time.
	Update(ctx context.Context, i *Item) error
	Delete(ctx context.Context, id bson.ObjectID) error

	// AddPropertyValue pushes a value onto every item whose parent
	// catalogue item is in the given set. Runs inside the propagation
	// transaction; item modified_time is left alone.
	AddPropertyValue(ctx context.Context, catalogueItemIDs []bson.ObjectID, pv catalogueitem.PropertyValue) error

	// RenameProperty rewrites the cached name of a property value across
	// all items carrying it.
	RenameProperty(ctx context.Context, propertyID bson.ObjectID, name string) error
}
