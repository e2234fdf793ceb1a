package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"inventory-backend/internal/domains/system"
	"inventory-backend/internal/infrastructure/database"
	"inventory-backend/internal/shared/treequery"
)

type mongoRepository struct {
	systems *mongo.Collection
	items   *mongo.Collection
	tree    *treequery.Query
}

func NewMongoRepository(db *database.MongoDB) system.Repository {
	systems := db.Collection(database.CollectionSystems)
	return &mongoRepository{
		systems: systems,
		items:   db.Collection(database.CollectionItems),
		tree:    treequery.New(systems),
	}
}

func (r *mongoRepository) Create(ctx context.Context, s *system.System) (*system.System, error) {
	s.ID = bson.NewObjectID()
	now := time.Now().UTC()
	s.CreatedTime = now
	s.ModifiedTime = now

	if _, err := r.systems.InsertOne(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*system.System, error) {
	var s system.System
	err := r.systems.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, system.ErrSystemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoRepository) List(ctx context.Context, filter system.ListFilter) ([]system.System, error) {
	if filter.MatchesNone {
		return []system.System{}, nil
	}

	query := bson.M{}
	if filter.RootsOnly {
		query["parent_id"] = nil
	} else if filter.ParentID != nil {
		query["parent_id"] = *filter.ParentID
	}

	cursor, err := r.systems.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	systems := []system.System{}
	if err := cursor.All(ctx, &systems); err != nil {
		return nil, err
	}
	return systems, nil
}

func (r *mongoRepository) Update(ctx context.Context, s *system.System) error {
	s.ModifiedTime = time.Now().UTC()

	result, err := r.systems.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return system.ErrSystemNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.systems.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return system.ErrSystemNotFound
	}
	return nil
}

func (r *mongoRepository) HasChildSystems(ctx context.Context, id bson.ObjectID) (bool, error) {
	return r.exists(ctx, r.systems, bson.M{"parent_id": id})
}

func (r *mongoRepository) HasItems(ctx context.Context, id bson.ObjectID) (bool, error) {
	return r.exists(ctx, r.items, bson.M{"system_id": id})
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
	return r.exists(ctx, r.systems, query)
}

func (r *mongoRepository) Breadcrumbs(ctx context.Context, id bson.ObjectID) (*treequery.Trail, error) {
	return r.tree.Breadcrumbs(ctx, id)
}

func (r *mongoRepository) MoveAllowed(ctx context.Context, movingID, destID bson.ObjectID) (bool, error) {
	return r.tree.MoveAllowed(ctx, movingID, destID)
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
