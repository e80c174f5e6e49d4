package models

import "errors"

// notFoundError is returned when a resource does not exist or is owned by
// another user. The two cases are deliberately indistinguishable.
type notFoundError struct {
	resource string
	code     string
}

func (e notFoundError) Error() string {
	return e.resource + " not found"
}

func (e notFoundError) ErrorCode() string {
	return e.code
}

var (
	// ErrCategoryNotFound is returned when no category matches id and owner.
	ErrCategoryNotFound error = notFoundError{resource: "Category", code: "CATEGORY_NOT_FOUND"}

	// ErrTransactionNotFound is returned when no transaction matches id and owner.
	ErrTransactionNotFound error = notFoundError{resource: "Transaction", code: "NOT_FOUND"}

	// ErrGeneral is the error returned to users when we cannot provide more
	// useful information. The underlying error is logged instead.
	ErrGeneral = errors.New("an error occurred on the server during your request, please contact your server administrator")
)
