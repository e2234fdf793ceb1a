package item

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Service interface {
	Create(ctx context.Context, req CreateItemReq) (*Item, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*Item, error)
	List(ctx context.Context, filter ListFilter) ([]Item, error)
	Update(ctx context.Context, id bson.ObjectID, req UpdateItemReq) (*Item, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
