//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=audit_test
package audit

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	InsertStatusHistory(ctx context.Context, event entities.OrderStatusEvent) error
}
