package order

import (
	"errors"
	"fmt"

	"marketplace/internal/entities"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrUndefinedStatus       = errors.New("undefined order status")
	ErrOrderNotFound         = errors.New("order not found")
	ErrProductNotFound       = errors.New("product not found in manufacturer catalog")
	ErrConflict              = errors.New("order already exists")
	ErrActorNotAllowed       = errors.New("actor kind is not allowed to perform this operation")
	ErrNotOrderOwner         = errors.New("order belongs to another account")
	ErrInvalidTransition     = errors.New("illegal status transition")

	// ErrStatusConflict means the order status changed between read and
	// write. The caller lost the race, not made an illegal request.
	ErrStatusConflict = errors.New("order status changed concurrently")
)

// InvalidTransitionError reports a rejected transition together with the
// targets that would have been accepted.
type InvalidTransitionError struct {
	From      entities.OrderStatusType
	Requested entities.OrderStatusType
	Allowed   []entities.OrderStatusType
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition from %q to %q, allowed: %v", e.From, e.Requested, e.Allowed)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
