package catalogueitem

import "errors"

var (
	ErrCatalogueItemNotFound = errors.New("catalogue item not found")

	// ErrCategoryNotFound rejects a body reference to a catalogue
	// category that does not resolve.
	ErrCategoryNotFound = errors.New("the specified catalogue category does not exist")

	// ErrNonLeafCategory rejects placing a catalogue item under a
	// non-leaf category.
	ErrNonLeafCategory = errors.New("cannot add catalogue item to a non-leaf catalogue category")

	// ErrManufacturerNotFound rejects a body reference to a manufacturer
	// that does not resolve.
	ErrManufacturerNotFound = errors.New("the specified manufacturer does not exist")

	// ErrReplacementNotFound rejects an obsolete_replacement_catalogue_item_id
	// that does not resolve.
	ErrReplacementNotFound = errors.New("the specified replacement catalogue item does not exist")

	// ErrChildElementsExist blocks deletion and locked edits while items
	// reference the catalogue item.
	ErrChildElementsExist = errors.New("catalogue item has child elements")
)
