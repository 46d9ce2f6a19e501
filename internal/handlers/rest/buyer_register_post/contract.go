//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=buyer_register_post_test
package buyer_register_post

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RegisterBuyer(ctx context.Context, registration entities.BuyerRegistration) (int64, error)
}
