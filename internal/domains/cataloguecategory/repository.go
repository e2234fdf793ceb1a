package cataloguecategory

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/shared/treequery"
)

type Repository interface {
	Create(ctx context.Context, c *CatalogueCategory) (*CatalogueCategory, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*CatalogueCategory, error)
	List(ctx context.Context, filter ListFilter) ([]CatalogueCategory, error)

	// Update replaces the stored document and refreshes modified_time.
	Update(ctx context.Context, c *CatalogueCategory) error
	Delete(ctx context.Context, id bson.ObjectID) error

	// Child checks span both the category tree and the catalogue items
	// referencing the node.
	HasChildCategories(ctx context.Context, id bson.ObjectID) (bool, error)
	HasCatalogueItems(ctx context.Context, id bson.ObjectID) (bool, error)

	// CodeExistsWithinParent enforces the sibling duplicate scope.
	// excludeID skips the entity itself on rename/move re-checks.
	CodeExistsWithinParent(ctx context.Context, parentID *bson.ObjectID, code string, excludeID bson.ObjectID) (bool, error)

	Breadcrumbs(ctx context.Context, id bson.ObjectID) (*treequery.Trail, error)
	MoveAllowed(ctx context.Context, movingID, destID bson.ObjectID) (bool, error)

	// AddProperty and ReplaceProperty mutate the embedded schema and
	// refresh modified_time. Run inside the propagation transaction.
	AddProperty(ctx context.Context, categoryID bson.ObjectID, p Property) error
	ReplaceProperty(ctx context.Context, categoryID bson.ObjectID, p Property) error
}
