//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=catalog_put_test
package catalog_put

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
	ReplaceCatalog(ctx context.Context, manufacturerID int64, products []entities.Product) ([]entities.Product, error)
}
