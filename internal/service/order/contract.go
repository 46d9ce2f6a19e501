//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	UpdateStatusIf(ctx context.Context, id string, expected, next entities.OrderStatusType, at time.Time) (*entities.Order, error)
	CountByStatus(ctx context.Context) ([]entities.OrderStatusCount, error)
}

type AccountService interface {
	GetManufacturer(ctx context.Context, id int64) (*entities.Manufacturer, error)
	GetBuyer(ctx context.Context, id int64) (*entities.Buyer, error)
}

// EventPublisher delivery is fire and forget. A lost event never rolls
// back an applied transition.
type EventPublisher interface {
	OrderStatusChanged(ctx context.Context, event entities.OrderStatusEvent)
}

type IDFactory interface {
	NewOrderID() string
}
