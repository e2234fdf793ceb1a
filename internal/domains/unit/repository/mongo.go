package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"inventory-backend/internal/domains/unit"
	"inventory-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	units               *mongo.Collection
	catalogueCategories *mongo.Collection
}

func NewMongoRepository(db *database.MongoDB) unit.Repository {
	return &mongoRepository{
		units:               db.Collection(database.CollectionUnits),
		catalogueCategories: db.Collection(database.CollectionCatalogueCategories),
	}
}

func (r *mongoRepository) Create(ctx context.Context, u *unit.Unit) (*unit.Unit, error) {
	u.ID = bson.NewObjectID()
	now := time.Now().UTC()
	u.CreatedTime = now
	u.ModifiedTime = now

	if _, err := r.units.InsertOne(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*unit.Unit, error) {
	var u unit.Unit
	err := r.units.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, unit.ErrUnitNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *mongoRepository) List(ctx context.Context) ([]unit.Unit, error) {
	cursor, err := r.units.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "value", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	units := []unit.Unit{}
	if err := cursor.All(ctx, &units); err != nil {
		return nil, err
	}
	return units, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.units.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return unit.ErrUnitNotFound
	}
	return nil
}

func (r *mongoRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	err := r.units.FindOne(ctx, bson.M{"code": code},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *mongoRepository) InUse(ctx context.Context, id bson.ObjectID) (bool, error) {
	err := r.catalogueCategories.FindOne(ctx, bson.M{"properties.unit_id": id},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
