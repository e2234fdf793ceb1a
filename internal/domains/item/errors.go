package item

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")

	// ErrCatalogueItemNotFound rejects a body reference to a catalogue
	// item that does not resolve.
	ErrCatalogueItemNotFound = errors.New("the specified catalogue item does not exist")

	// ErrSystemNotFound rejects a body reference to a system that does
	// not resolve.
	ErrSystemNotFound = errors.New("the specified system does not exist")

	// ErrUsageStatusNotFound rejects a body reference to a usage status
	// that does not resolve.
	ErrUsageStatusNotFound = errors.New("the specified usage status does not exist")
)
