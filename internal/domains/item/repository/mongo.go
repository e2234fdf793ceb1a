package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"inventory-backend/internal/domains/catalogueitem"
	"inventory-backend/internal/domains/item"
	"inventory-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	items *mongo.Collection
}

func NewMongoRepository(db *database.MongoDB) item.Repository {
	return &mongoRepository{items: db.Collection(database.CollectionItems)}
}

func (r *mongoRepository) Create(ctx context.Context, i *item.Item) (*item.Item, error) {
	i.ID = bson.NewObjectID()
	now := time.Now().UTC()
	i.CreatedTime = now
	i.ModifiedTime = now
	if i.Properties == nil {
		i.Properties = []catalogueitem.PropertyValue{}
	}

	if _, err := r.items.InsertOne(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*item.Item, error) {
	var i item.Item
	err := r.items.FindOne(ctx, bson.M{"_id": id}).Decode(&i)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, item.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *mongoRepository) List(ctx context.Context, filter item.ListFilter) ([]item.Item, error) {
	if filter.MatchesNone {
		return []item.Item{}, nil
	}

	query := bson.M{}
	if filter.CatalogueItemID != nil {
		query["catalogue_item_id"] = *filter.CatalogueItemID
	}
	if filter.SystemID != nil {
		query["system_id"] = *filter.SystemID
	}

	cursor, err := r.items.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []item.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoRepository) Update(ctx context.Context, i *item.Item) error {
	i.ModifiedTime = time.Now().UTC()

	result, err := r.items.ReplaceOne(ctx, bson.M{"_id": i.ID}, i)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return item.ErrItemNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.items.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return item.ErrItemNotFound
	}
	return nil
}

func (r *mongoRepository) AddPropertyValue(ctx context.Context, catalogueItemIDs []bson.ObjectID, pv catalogueitem.PropertyValue) error {
	_, err := r.items.UpdateMany(ctx,
		bson.M{"catalogue_item_id": bson.M{"$in": catalogueItemIDs}},
		bson.M{"$push": bson.M{"properties": pv}},
	)
	return err
}

func (r *mongoRepository) RenameProperty(ctx context.Context, propertyID bson.ObjectID, name string) error {
	_, err := r.items.UpdateMany(ctx,
		bson.M{"properties._id": propertyID},
		bson.M{"$set": bson.M{"properties.$[property].name": name}},
		options.UpdateMany().SetArrayFilters([]any{bson.M{"property._id": propertyID}}),
	)
	return err
}
