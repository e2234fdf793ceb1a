package usagestatus

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Service interface {
	Create(ctx context.Context, req CreateUsageStatusReq) (*UsageStatus, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*UsageStatus, error)
	List(ctx context.Context) ([]UsageStatus, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
