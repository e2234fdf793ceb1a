package usagestatus

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Repository interface {
	Create(ctx context.Context, s *UsageStatus) (*UsageStatus, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*UsageStatus, error)
	List(ctx context.Context) ([]UsageStatus, error)
	Delete(ctx context.Context, id bson.ObjectID) error

	CodeExists(ctx context.Context, code string) (bool, error)

	// InUse probes the items collection for any reference to the usage
	// status. Bounded existence check.
	InUse(ctx context.Context, id bson.ObjectID) (bool, error)
}
