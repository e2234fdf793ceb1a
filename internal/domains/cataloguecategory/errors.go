package cataloguecategory

import "errors"

var (
	ErrCatalogueCategoryNotFound = errors.New("catalogue category not found")
	ErrParentNotFound            = errors.New("parent catalogue category not found")
	ErrPropertyNotFound          = errors.New("property not found")

	// ErrDuplicateCatalogueCategory fires when (parent_id, code) collides
	// with a sibling.
	ErrDuplicateCatalogueCategory = errors.New("duplicate catalogue category found within the parent catalogue category")

	// ErrLeafParent rejects placing a category under a leaf.
	ErrLeafParent = errors.New("cannot add a catalogue category within a leaf catalogue category")

	// ErrChildElementsExist blocks deletion and is_leaf/properties edits
	// while child categories or catalogue items exist.
	ErrChildElementsExist = errors.New("catalogue category has child elements")

	// ErrUnitNotFound rejects a property definition whose unit_id does
	// not resolve.
	ErrUnitNotFound = errors.New("the specified unit does not exist")
)
