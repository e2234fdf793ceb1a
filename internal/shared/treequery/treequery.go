// Package treequery implements the ancestor walks shared by the
// catalogue-category and system trees: breadcrumb trails and the
// move-cycle check. Both are a single $graphLookup aggregation, so a
// walk costs one round-trip regardless of depth up to the bound.
package treequery

import (
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// TrailMaxLength caps breadcrumb trails, entity included. The aggregation
// never walks further than this, which keeps it cheap on deep trees.
const TrailMaxLength = 5

var (
	// ErrEntityNotFound reports that the walk's starting entity does not
	// exist.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrDanglingParent reports a parent reference that does not resolve
	// to a document. The tree is corrupt; callers surface this as a
	// database-integrity failure.
	ErrDanglingParent = errors.New("parent reference does not resolve to a document")
)

type BreadcrumbEntry struct {
	ID   bson.ObjectID `json:"id"`
	Name string        `json:"name"`
}

// Trail is the ordered root-to-entity breadcrumb. FullTrail is true iff
// the first entry is a root; false means the trail was truncated at
// TrailMaxLength.
type Trail struct {
	Trail     []BreadcrumbEntry `json:"trail"`
	FullTrail bool              `json:"full_trail"`
}

type node struct {
	ID       bson.ObjectID  `bson:"_id"`
	Name     string         `bson:"name"`
	ParentID *bson.ObjectID `bson:"parent_id"`
	Depth    int32          `bson:"depth"`
}

type walkResult struct {
	ID        bson.ObjectID  `bson:"_id"`
	Name      string         `bson:"name"`
	ParentID  *bson.ObjectID `bson:"parent_id"`
	Ancestors []node         `bson:"ancestors"`
}

// Query runs ancestor walks over one tree collection.
type Query struct {
	coll *mongo.Collection
}

func New(coll *mongo.Collection) *Query {
	return &Query{coll: coll}
}

// Breadcrumbs returns the (id, name) trail from root toward the entity.
func (q *Query) Breadcrumbs(ctx context.Context, id bson.ObjectID) (*Trail, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		bson.D{{Key: "$graphLookup", Value: bson.D{
			{Key: "from", Value: q.coll.Name()},
			{Key: "startWith", Value: "$parent_id"},
			{Key: "connectFromField", Value: "parent_id"},
			{Key: "connectToField", Value: "_id"},
			{Key: "as", Value: "ancestors"},
			// depth 0 is the parent, so the bound is two less than the
			// trail cap: ancestors plus the entity itself fill the trail.
			{Key: "maxDepth", Value: TrailMaxLength - 2},
			{Key: "depthField", Value: "depth"},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "parent_id", Value: 1},
			{Key: "ancestors._id", Value: 1},
			{Key: "ancestors.name", Value: 1},
			{Key: "ancestors.parent_id", Value: 1},
			{Key: "ancestors.depth", Value: 1},
		}}},
	}

	result, err := q.run(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return interpretTrail(result)
}

// MoveAllowed reports whether moving entity movingID under destID keeps
// the tree acyclic. The walk starts at the destination and excludes the
// moving entity; the move is valid iff it reaches a root.
func (q *Query) MoveAllowed(ctx context.Context, movingID, destID bson.ObjectID) (bool, error) {
	if movingID == destID {
		return false, nil
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: destID}}}},
		bson.D{{Key: "$graphLookup", Value: bson.D{
			{Key: "from", Value: q.coll.Name()},
			{Key: "startWith", Value: "$parent_id"},
			{Key: "connectFromField", Value: "parent_id"},
			{Key: "connectToField", Value: "_id"},
			{Key: "as", Value: "ancestors"},
			{Key: "depthField", Value: "depth"},
			{Key: "restrictSearchWithMatch", Value: bson.D{
				{Key: "_id", Value: bson.D{{Key: "$ne", Value: movingID}}},
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "parent_id", Value: 1},
			{Key: "ancestors._id", Value: 1},
			{Key: "ancestors.name", Value: 1},
			{Key: "ancestors.parent_id", Value: 1},
			{Key: "ancestors.depth", Value: 1},
		}}},
	}

	result, err := q.run(ctx, pipeline)
	if err != nil {
		return false, err
	}
	return interpretMove(result), nil
}

func (q *Query) run(ctx context.Context, pipeline mongo.Pipeline) (*walkResult, error) {
	cursor, err := q.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []walkResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrEntityNotFound
	}
	return &results[0], nil
}

// interpretTrail orders the returned ancestors root-first, appends the
// entity, and decides between truncation and a broken parent chain.
func interpretTrail(result *walkResult) (*Trail, error) {
	ancestors := sortedByDepthDescending(result.Ancestors)

	entries := make([]BreadcrumbEntry, 0, len(ancestors)+1)
	for _, ancestor := range ancestors {
		entries = append(entries, BreadcrumbEntry{ID: ancestor.ID, Name: ancestor.Name})
	}
	entries = append(entries, BreadcrumbEntry{ID: result.ID, Name: result.Name})

	topParentID := result.ParentID
	if len(ancestors) > 0 {
		topParentID = ancestors[0].ParentID
	}

	fullTrail := topParentID == nil
	if !fullTrail && len(entries) < TrailMaxLength {
		// The walk stopped before the bound with a parent still pending:
		// that parent does not exist.
		return nil, ErrDanglingParent
	}

	return &Trail{Trail: entries, FullTrail: fullTrail}, nil
}

// interpretMove: the destination chain must reach a root. A walk cut
// short by the excluded moving entity leaves a topmost node whose parent
// is still set, which rejects the move.
func interpretMove(result *walkResult) bool {
	if result.ParentID == nil {
		return true
	}

	ancestors := sortedByDepthDescending(result.Ancestors)
	if len(ancestors) == 0 {
		return false
	}
	return ancestors[0].ParentID == nil
}

func sortedByDepthDescending(ancestors []node) []node {
	sorted := make([]node, len(ancestors))
	copy(sorted, ancestors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Depth > sorted[j].Depth
	})
	return sorted
}
