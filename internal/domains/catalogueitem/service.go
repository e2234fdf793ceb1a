package catalogueitem

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Service interface {
	Create(ctx context.Context, req CreateCatalogueItemReq) (*CatalogueItem, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*CatalogueItem, error)
	List(ctx context.Context, filter ListFilter) ([]CatalogueItem, error)
	Update(ctx context.Context, id bson.ObjectID, req UpdateCatalogueItemReq) (*CatalogueItem, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
