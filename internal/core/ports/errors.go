package ports

import (
	"errors"
	"fmt"
)

var (
	// ErrSaveFailed is wrapped by SaveFailedError.
	ErrSaveFailed = errors.New("save failed")

	// ErrOrderAlreadyExists is the cause of a SaveFailedError on a duplicate create.
	ErrOrderAlreadyExists = errors.New("order already exists")
)

// SaveFailedError reports that a repository could not persist an order:
// a duplicate identifier on create, a missing order or a version conflict on update.
type SaveFailedError struct {
	OrderID string
	Cause   error
}

// NewSaveFailedError creates a SaveFailedError for the given order.
func NewSaveFailedError(orderID string, cause error) *SaveFailedError {
	return &SaveFailedError{OrderID: orderID, Cause: cause}
}

func (e *SaveFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to save order %s: %v", e.OrderID, e.Cause)
	}
	return fmt.Sprintf("failed to save order %s", e.OrderID)
}

func (e *SaveFailedError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrSaveFailed, e.Cause}
	}
	return []error{ErrSaveFailed}
}
