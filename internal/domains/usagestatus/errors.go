package usagestatus

import "errors"

var (
	ErrUsageStatusNotFound  = errors.New("usage status not found")
	ErrDuplicateUsageStatus = errors.New("duplicate usage status found")

	// ErrUsageStatusInUse blocks deletion while any item references the
	// usage status.
	ErrUsageStatusInUse = errors.New("the specified usage status is a part of an item")
)
