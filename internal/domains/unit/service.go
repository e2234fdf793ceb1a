package unit

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Service interface {
	Create(ctx context.Context, req CreateUnitReq) (*Unit, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*Unit, error)
	List(ctx context.Context) ([]Unit, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
