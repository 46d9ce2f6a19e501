package audit

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

// Service projects order status events into the history table. It is the
// only writer of order_status_history.
type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) Record(ctx context.Context, event entities.OrderStatusEvent) error {
	if event.OrderID == "" {
		return fmt.Errorf("%w: empty order id", ErrInvalidEvent)
	}
	if !event.Status.IsValid() {
		return fmt.Errorf("%w: status %q", ErrInvalidEvent, event.Status)
	}
	if event.PreviousStatus != "" && !event.PreviousStatus.IsValid() {
		return fmt.Errorf("%w: previous status %q", ErrInvalidEvent, event.PreviousStatus)
	}

	if err := s.repository.InsertStatusHistory(ctx, event); err != nil {
		return fmt.Errorf("record status history: %w", err)
	}

	return nil
}
