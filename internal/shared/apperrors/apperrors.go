// Package apperrors defines the error kinds shared across domains whose
// detail text is built at the point of failure. Static kinds stay as
// sentinel errors in each domain's errors.go; these carry a message that
// handlers return verbatim in the response detail field.
package apperrors

// InvalidActionError rejects an operation that is well-formed but not
// permitted, such as a tree move that would create a cycle or a
// forbidden property edit. Maps to 422.
type InvalidActionError struct {
	Detail string
}

func (e InvalidActionError) Error() string { return e.Detail }

func InvalidAction(detail string) error { return InvalidActionError{Detail: detail} }

// InvalidPropertyDefinitionError rejects a property definition that
// violates the schema rules. Maps to 422.
type InvalidPropertyDefinitionError struct {
	Detail string
}

func (e InvalidPropertyDefinitionError) Error() string { return e.Detail }

func InvalidPropertyDefinition(detail string) error {
	return InvalidPropertyDefinitionError{Detail: detail}
}

// DuplicatePropertyNameError rejects a property whose name collides
// within its category. Maps to 422.
type DuplicatePropertyNameError struct {
	Detail string
}

func (e DuplicatePropertyNameError) Error() string { return e.Detail }

func DuplicatePropertyName(detail string) error { return DuplicatePropertyNameError{Detail: detail} }

// MissingMandatoryPropertyError rejects an item write that omits or
// nulls a mandatory property. Maps to 422.
type MissingMandatoryPropertyError struct {
	Detail string
}

func (e MissingMandatoryPropertyError) Error() string { return e.Detail }

func MissingMandatoryProperty(detail string) error {
	return MissingMandatoryPropertyError{Detail: detail}
}

// InvalidPropertyValueError rejects a supplied value whose type or
// allowed-list membership does not match its definition. Maps to 422.
type InvalidPropertyValueError struct {
	Detail string
}

func (e InvalidPropertyValueError) Error() string { return e.Detail }

func InvalidPropertyValue(detail string) error { return InvalidPropertyValueError{Detail: detail} }

// DatabaseIntegrityError reports an invariant that should never fire,
// such as a broken parent chain. Maps to 500.
type DatabaseIntegrityError struct {
	Detail string
}

func (e DatabaseIntegrityError) Error() string { return e.Detail }

func DatabaseIntegrity(detail string) error { return DatabaseIntegrityError{Detail: detail} }
