package utils

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrInvalidObjectID is returned when a string in a path position is not a
// valid 24-character hex object id.
var ErrInvalidObjectID = errors.New("invalid ID format")

// ParseObjectID validates an id supplied in a path position. Handlers map
// the error to 404 so that malformed ids are indistinguishable from
// missing records.
func ParseObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, ErrInvalidObjectID
	}
	return oid, nil
}

// ParseFilterObjectID validates an id supplied in a filter position.
// Filters are permissive: an invalid id matches nothing rather than
// raising an error, so the caller gets back ok=false and should return an
// empty result set.
func ParseFilterObjectID(id string) (bson.ObjectID, bool) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, false
	}
	return oid, true
}
