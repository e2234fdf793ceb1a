package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"inventory-backend/internal/domains/catalogueitem"
	"inventory-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	catalogueItems *mongo.Collection
	items          *mongo.Collection
}

func NewMongoRepository(db *database.MongoDB) catalogueitem.Repository {
	return &mongoRepository{
		catalogueItems: db.Collection(database.CollectionCatalogueItems),
		items:          db.Collection(database.CollectionItems),
	}
}

func (r *mongoRepository) Create(ctx context.Context, c *catalogueitem.CatalogueItem) (*catalogueitem.CatalogueItem, error) {
	c.ID = bson.NewObjectID()
	now := time.Now().UTC()
	c.CreatedTime = now
	c.ModifiedTime = now
	if c.Properties == nil {
		c.Properties = []catalogueitem.PropertyValue{}
	}

	if _, err := r.catalogueItems.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*catalogueitem.CatalogueItem, error) {
	var c catalogueitem.CatalogueItem
	err := r.catalogueItems.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, catalogueitem.ErrCatalogueItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoRepository) List(ctx context.Context, filter catalogueitem.ListFilter) ([]catalogueitem.CatalogueItem, error) {
	if filter.MatchesNone {
		return []catalogueitem.CatalogueItem{}, nil
	}

	query := bson.M{}
	if filter.CatalogueCategoryID != nil {
		query["catalogue_category_id"] = *filter.CatalogueCategoryID
	}

	cursor, err := r.catalogueItems.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []catalogueitem.CatalogueItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoRepository) Update(ctx context.Context, c *catalogueitem.CatalogueItem) error {
	c.ModifiedTime = time.Now().UTC()

	result, err := r.catalogueItems.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return catalogueitem.ErrCatalogueItemNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.catalogueItems.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return catalogueitem.ErrCatalogueItemNotFound
	}
	return nil
}

func (r *mongoRepository) HasItems(ctx context.Context, id bson.ObjectID) (bool, error) {
	err := r.items.FindOne(ctx,
		bson.M{"catalogue_item_id": id},
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *mongoRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	err := r.catalogueItems.FindOne(ctx,
		bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *mongoRepository) ListIDsByCategory(ctx context.Context, categoryID bson.ObjectID) ([]bson.ObjectID, error) {
	cursor, err := r.catalogueItems.Find(ctx,
		bson.M{"catalogue_category_id": categoryID},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]bson.ObjectID, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}
	return ids, nil
}

func (r *mongoRepository) AddPropertyValue(ctx context.Context, categoryID bson.ObjectID, pv catalogueitem.PropertyValue) error {
	_, err := r.catalogueItems.UpdateMany(ctx,
		bson.M{"catalogue_category_id": categoryID},
		bson.M{"$push": bson.M{"properties": pv}},
	)
	return err
}

func (r *mongoRepository) RenameProperty(ctx context.Context, propertyID bson.ObjectID, name string) error {
	_, err := r.catalogueItems.UpdateMany(ctx,
		bson.M{"properties._id": propertyID},
		bson.M{"$set": bson.M{"properties.$[property].name": name}},
		options.UpdateMany().SetArrayFilters([]any{bson.M{"property._id": propertyID}}),
	)
	return err
}
