package manufacturer

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Service interface {
	Create(ctx context.Context, req CreateManufacturerReq) (*Manufacturer, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*Manufacturer, error)
	List(ctx context.Context) ([]Manufacturer, error)
	Update(ctx context.Context, id bson.ObjectID, req UpdateManufacturerReq) (*Manufacturer, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
