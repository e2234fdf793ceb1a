package system

import "errors"

var (
	ErrSystemNotFound = errors.New("system not found")
	ErrParentNotFound = errors.New("parent system not found")

	// ErrDuplicateSystem fires when (parent_id, code) collides with a
	// sibling.
	ErrDuplicateSystem = errors.New("duplicate system found within the parent system")

	// ErrChildElementsExist blocks deletion while child systems or items
	// exist.
	ErrChildElementsExist = errors.New("system has child elements")
)
