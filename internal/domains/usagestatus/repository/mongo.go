package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"inventory-backend/internal/domains/usagestatus"
	"inventory-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	usageStatuses *mongo.Collection
	items         *mongo.Collection
}

func NewMongoRepository(db *database.MongoDB) usagestatus.Repository {
	return &mongoRepository{
		usageStatuses: db.Collection(database.CollectionUsageStatuses),
		items:         db.Collection(database.CollectionItems),
	}
}

func (r *mongoRepository) Create(ctx context.Context, s *usagestatus.UsageStatus) (*usagestatus.UsageStatus, error) {
	s.ID = bson.NewObjectID()
	now := time.Now().UTC()
	s.CreatedTime = now
	s.ModifiedTime = now

	if _, err := r.usageStatuses.InsertOne(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*usagestatus.UsageStatus, error) {
	var s usagestatus.UsageStatus
	err := r.usageStatuses.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, usagestatus.ErrUsageStatusNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoRepository) List(ctx context.Context) ([]usagestatus.UsageStatus, error) {
	cursor, err := r.usageStatuses.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "value", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	statuses := []usagestatus.UsageStatus{}
	if err := cursor.All(ctx, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.usageStatuses.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return usagestatus.ErrUsageStatusNotFound
	}
	return nil
}

func (r *mongoRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	err := r.usageStatuses.FindOne(ctx, bson.M{"code": code},
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
	err := r.items.FindOne(ctx, bson.M{"usage_status_id": id},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
