package manufacturer

import "errors"

var (
	ErrManufacturerNotFound  = errors.New("manufacturer not found")
	ErrDuplicateManufacturer = errors.New("duplicate manufacturer found")

	// ErrManufacturerInUse blocks deletion while any catalogue item
	// references the manufacturer.
	ErrManufacturerInUse = errors.New("the specified manufacturer is a part of a catalogue item")
)
