package system

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/shared/treequery"
)

type Repository interface {
	Create(ctx context.Context, s *System) (*System, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*System, error)
	List(ctx context.Context, filter ListFilter) ([]System, error)

	// Update replaces the stored document and refreshes modified_time.
	Update(ctx context.Context, s *System) error
	Delete(ctx context.Context, id bson.ObjectID) error

	// Child checks span the system tree and the items placed in the
	// node.
	HasChildSystems(ctx context.Context, id bson.ObjectID) (bool, error)
	HasItems(ctx context.Context, id bson.ObjectID) (bool, error)

	// CodeExistsWithinParent enforces the sibling duplicate scope.
	CodeExistsWithinParent(ctx context.Context, parentID *bson.ObjectID, code string, excludeID bson.ObjectID) (bool, error)

	Breadcrumbs(ctx context.Context, id bson.ObjectID) (*treequery.Trail, error)
	MoveAllowed(ctx context.Context, movingID, destID bson.ObjectID) (bool, error)
}
