package system

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/shared/treequery"
)

type Service interface {
	Create(ctx context.Context, req CreateSystemReq) (*System, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*System, error)
	List(ctx context.Context, filter ListFilter) ([]System, error)
	Update(ctx context.Context, id bson.ObjectID, req UpdateSystemReq) (*System, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	Breadcrumbs(ctx context.Context, id bson.ObjectID) (*treequery.Trail, error)
}
