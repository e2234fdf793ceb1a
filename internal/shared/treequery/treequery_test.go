package treequery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func oid() bson.ObjectID { return bson.NewObjectID() }

func oidPtr(id bson.ObjectID) *bson.ObjectID { return &id }

func TestInterpretTrailRootEntity(t *testing.T) {
	id := oid()
	trail, err := interpretTrail(&walkResult{ID: id, Name: "Root"})
	require.NoError(t, err)

	assert.True(t, trail.FullTrail)
	require.Len(t, trail.Trail, 1)
	assert.Equal(t, id, trail.Trail[0].ID)
	assert.Equal(t, "Root", trail.Trail[0].Name)
}

func TestInterpretTrailOrdersRootFirst(t *testing.T) {
	rootID, midID, selfID := oid(), oid(), oid()

	trail, err := interpretTrail(&walkResult{
		ID:       selfID,
		Name:     "Leaf",
		ParentID: oidPtr(midID),
		Ancestors: []node{
			// Aggregation output order is unspecified; depth drives it.
			{ID: midID, Name: "Mid", ParentID: oidPtr(rootID), Depth: 0},
			{ID: rootID, Name: "Root", ParentID: nil, Depth: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, trail.FullTrail)
	require.Len(t, trail.Trail, 3)
	assert.Equal(t, []string{"Root", "Mid", "Leaf"}, []string{
		trail.Trail[0].Name, trail.Trail[1].Name, trail.Trail[2].Name,
	})
}

func TestInterpretTrailTruncated(t *testing.T) {
	// Five entries with the topmost still holding a parent reference:
	// truncation, not corruption.
	self := oid()
	ancestors := make([]node, TrailMaxLength-1)
	beyond := oid()
	parent := oidPtr(beyond)
	for i := range ancestors {
		ancestors[i] = node{ID: oid(), Name: "A", ParentID: parent, Depth: int32(TrailMaxLength - 2 - i)}
		parent = oidPtr(ancestors[i].ID)
	}

	trail, err := interpretTrail(&walkResult{
		ID:        self,
		Name:      "Leaf",
		ParentID:  oidPtr(ancestors[len(ancestors)-1].ID),
		Ancestors: ancestors,
	})
	require.NoError(t, err)

	assert.False(t, trail.FullTrail)
	assert.Len(t, trail.Trail, TrailMaxLength)
}

func TestInterpretTrailDanglingParent(t *testing.T) {
	// Short trail whose topmost node still references a parent: the walk
	// stopped because the parent document is gone.
	missing := oid()
	_, err := interpretTrail(&walkResult{
		ID:       oid(),
		Name:     "Orphan",
		ParentID: oidPtr(missing),
	})
	assert.ErrorIs(t, err, ErrDanglingParent)
}

func TestInterpretMoveToRootDestination(t *testing.T) {
	assert.True(t, interpretMove(&walkResult{ID: oid(), ParentID: nil}))
}

func TestInterpretMoveReachesRoot(t *testing.T) {
	rootID, parentID := oid(), oid()
	allowed := interpretMove(&walkResult{
		ID:       oid(),
		ParentID: oidPtr(parentID),
		Ancestors: []node{
			{ID: parentID, ParentID: oidPtr(rootID), Depth: 0},
			{ID: rootID, ParentID: nil, Depth: 1},
		},
	})
	assert.True(t, allowed)
}

func TestInterpretMoveCycle(t *testing.T) {
	// The moving entity was excluded from the walk, so the chain ends at
	// a node that still points to it.
	movingID, destParent := oid(), oid()

	allowed := interpretMove(&walkResult{
		ID:       oid(),
		ParentID: oidPtr(destParent),
		Ancestors: []node{
			{ID: destParent, ParentID: oidPtr(movingID), Depth: 0},
		},
	})
	assert.False(t, allowed)
}

func TestInterpretMoveDirectChildOfMoving(t *testing.T) {
	// Destination's parent is the moving entity itself: no ancestors come
	// back at all.
	allowed := interpretMove(&walkResult{ID: oid(), ParentID: oidPtr(oid())})
	assert.False(t, allowed)
}
