package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"inventory-backend/internal/domains/cataloguecategory"
	"inventory-backend/internal/infrastructure/database"
	"inventory-backend/internal/shared/treequery"
)

type mongoRepository struct {
	catalogueCategories *mongo.Collection
	catalogueItems      *mongo.Collection
	tree                *treequery.Query
}

func NewMongoRepository(db *database.MongoDB) cataloguecategory.Repository {
	categories := db.Collection(database.CollectionCatalogueCategories)
	return &mongoRepository{
		catalogueCategories: categories,
		catalogueItems:      db.Collection(database.CollectionCatalogueItems),
		tree:                treequery.New(categories),
	}
}

func (r *mongoRepository) Create(ctx context.Context, c *cataloguecategory.CatalogueCategory) (*cataloguecategory.CatalogueCategory, error) {
	c.ID = bson.NewObjectID()
	now := time.Now().UTC()
	c.CreatedTime = now
	c.ModifiedTime = now
	if c.Properties == nil {
		c.Properties = []cataloguecategory.Property{}
	}

	if _, err := r.catalogueCategories.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*cataloguecategory.CatalogueCategory, error) {
	var c cataloguecategory.CatalogueCategory
	err := r.catalogueCategories.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, cataloguecategory.ErrCatalogueCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoRepository) List(ctx context.Context, filter cataloguecategory.ListFilter) ([]cataloguecategory.CatalogueCategory, error) {
	if filter.MatchesNone {
		return []cataloguecategory.CatalogueCategory{}, nil
	}

	query := bson.M{}
	if filter.RootsOnly {
		query["parent_id"] = nil
	} else if filter.ParentID != nil {
		query["parent_id"] = *filter.ParentID
	}

	cursor, err := r.catalogueCategories.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []cataloguecategory.CatalogueCategory{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *mongoRepository) Update(ctx context.Context, c *cataloguecategory.CatalogueCategory) error {
	c.ModifiedTime = time.Now().UTC()

	result, err := r.catalogueCategories.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return cataloguecategory.ErrCatalogueCategoryNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.catalogueCategories.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return cataloguecategory.ErrCatalogueCategoryNotFound
	}
	return nil
}

func (r *mongoRepository) HasChildCategories(ctx context.Context, id bson.ObjectID) (bool, error) {
	return r.exists(ctx, r.catalogueCategories, bson.M{"parent_id": id})
}

func (r *mongoRepository) HasCatalogueItems(ctx context.Context, id bson.ObjectID) (bool, error) {
	return r.exists(ctx, r.catalogueItems, bson.M{"catalogue_category_id": id})
}

func (r *mongoRepository) CodeExistsWithinParent(ctx context.Context, parentID *bson.ObjectID, code string, excludeID bson.ObjectID) (bool, error) {
	query := bson.M{"code": code}
	if parentID != nil {
		query["parent_id"] = *parentID
	} else {
		query["parent_id"] = nil
	}
	if !excludeID.IsZero() {
		query["_id"] = bson.M{"$ne": excludeID}
	}
	return r.exists(ctx, r.catalogueCategories, query)
}

func (r *mongoRepository) Breadcrumbs(ctx context.Context, id bson.ObjectID) (*treequery.Trail, error) {
	return r.tree.Breadcrumbs(ctx, id)
}

func (r *mongoRepository) MoveAllowed(ctx context.Context, movingID, destID bson.ObjectID) (bool, error) {
	return r.tree.MoveAllowed(ctx, movingID, destID)
}

func (r *mongoRepository) AddProperty(ctx context.Context, categoryID bson.ObjectID, p cataloguecategory.Property) error {
	result, err := r.catalogueCategories.UpdateOne(ctx,
		bson.M{"_id": categoryID},
		bson.M{
			"$push": bson.M{"properties": p},
			"$set":  bson.M{"modified_time": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return cataloguecategory.ErrCatalogueCategoryNotFound
	}
	return nil
}

func (r *mongoRepository) ReplaceProperty(ctx context.Context, categoryID bson.ObjectID, p cataloguecategory.Property) error {
	result, err := r.catalogueCategories.UpdateOne(ctx,
		bson.M{"_id": categoryID},
		bson.M{
			"$set": bson.M{
				"properties.$[property]": p,
				"modified_time":          time.Now().UTC(),
			},
		},
		options.UpdateOne().SetArrayFilters([]any{bson.M{"property._id": p.ID}}),
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return cataloguecategory.ErrCatalogueCategoryNotFound
	}
	return nil
}

func (r *mongoRepository) exists(ctx context.Context, coll *mongo.Collection, query bson.M) (bool, error) {
	err := coll.FindOne(ctx, query, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
