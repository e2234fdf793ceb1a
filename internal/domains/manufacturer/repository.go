package manufacturer

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Repository interface {
	Create(ctx context.Context, m *Manufacturer) (*Manufacturer, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*Manufacturer, error)
	List(ctx context.Context) ([]Manufacturer, error)
	Update(ctx context.Context, m *Manufacturer) error
	Delete(ctx context.Context, id bson.ObjectID) error

	CodeExists(ctx context.Context, code string) (bool, error)

	// InUse probes the catalogue_items collection for any reference to
	// the manufacturer. Bounded existence check.
	InUse(ctx context.Context, id bson.ObjectID) (bool, error)
}
