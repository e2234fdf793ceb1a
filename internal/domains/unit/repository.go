package unit

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Repository interface {
	Create(ctx context.Context, u *Unit) (*Unit, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*Unit, error)
	List(ctx context.Context) ([]Unit, error)
	Delete(ctx context.Context, id bson.ObjectID) error

	// CodeExists checks the global duplicate scope for units.
	CodeExists(ctx context.Context, code string) (bool, error)

	// InUse probes the catalogue_categories collection for any property
	// referencing the unit. Bounded existence check.
	InUse(ctx context.Context, id bson.ObjectID) (bool, error)
}
