//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=manufacturer_login_post_test
package manufacturer_login_post

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
	LoginManufacturer(ctx context.Context, login, secret string) (*entities.AuthToken, error)
}
