package cataloguecategory

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/shared/treequery"
)

type Service interface {
	Create(ctx context.Context, req CreateCatalogueCategoryReq) (*CatalogueCategory, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*CatalogueCategory, error)
	List(ctx context.Context, filter ListFilter) ([]CatalogueCategory, error)
	Update(ctx context.Context, id bson.ObjectID, req UpdateCatalogueCategoryReq) (*CatalogueCategory, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	Breadcrumbs(ctx context.Context, id bson.ObjectID) (*treequery.Trail, error)
}

// PropertyService is the propagation coordinator: schema changes on a
// category push transactionally into its catalogue items and their
// items.
type PropertyService interface {
	Create(ctx context.Context, categoryID bson.ObjectID, req CreatePropertyReq) (*Property, error)
	Update(ctx context.Context, categoryID, propertyID bson.ObjectID, req UpdatePropertyReq) (*Property, error)
}
