package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"inventory-backend/internal/domains/manufacturer"
	"inventory-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	manufacturers  *mongo.Collection
	catalogueItems *mongo.Collection
}

func NewMongoRepository(db *database.MongoDB) manufacturer.Repository {
	return &mongoRepository{
		manufacturers:  db.Collection(database.CollectionManufacturers),
		catalogueItems: db.Collection(database.CollectionCatalogueItems),
	}
}

func (r *mongoRepository) Create(ctx context.Context, m *manufacturer.Manufacturer) (*manufacturer.Manufacturer, error) {
	m.ID = bson.NewObjectID()
	now := time.Now().UTC()
	m.CreatedTime = now
	m.ModifiedTime = now

	if _, err := r.manufacturers.InsertOne(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*manufacturer.Manufacturer, error) {
	var m manufacturer.Manufacturer
	err := r.manufacturers.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, manufacturer.ErrManufacturerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mongoRepository) List(ctx context.Context) ([]manufacturer.Manufacturer, error) {
	cursor, err := r.manufacturers.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	manufacturers := []manufacturer.Manufacturer{}
	if err := cursor.All(ctx, &manufacturers); err != nil {
		return nil, err
	}
	return manufacturers, nil
}

func (r *mongoRepository) Update(ctx context.Context, m *manufacturer.Manufacturer) error {
	m.ModifiedTime = time.Now().UTC()

	result, err := r.manufacturers.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return manufacturer.ErrManufacturerNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.manufacturers.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return manufacturer.ErrManufacturerNotFound
	}
	return nil
}

func (r *mongoRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	err := r.manufacturers.FindOne(ctx, bson.M{"code": code},
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
	err := r.catalogueItems.FindOne(ctx, bson.M{"manufacturer_id": id},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
