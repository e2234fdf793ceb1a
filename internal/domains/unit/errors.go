package unit

import "errors"

var (
	ErrUnitNotFound  = errors.New("unit not found")
	ErrDuplicateUnit = errors.New("duplicate unit found")

	// ErrUnitInUse blocks deletion while any catalogue category property
	// references the unit.
	ErrUnitInUse = errors.New("the specified unit is a part of a catalogue category")
)
