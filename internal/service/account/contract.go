//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_test
package account

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	CreateManufacturer(ctx context.Context, manufacturer entities.Manufacturer) (int64, error)
	GetManufacturerByLogin(ctx context.Context, login string) (*entities.Manufacturer, error)
	GetManufacturerByID(ctx context.Context, id int64) (*entities.Manufacturer, error)
	ListManufacturers(ctx context.Context) ([]entities.Manufacturer, error)
	UpdateProducts(ctx context.Context, manufacturerID int64, products []entities.Product) error
	CreateBuyer(ctx context.Context, buyer entities.Buyer) (int64, error)
	GetBuyerByLogin(ctx context.Context, login string) (*entities.Buyer, error)
	GetBuyerByID(ctx context.Context, id int64) (*entities.Buyer, error)
}

type PasswordHasher interface {
	Hash(secret string) (string, error)
	Matches(secret, hash string) bool
}

type TokenIssuer interface {
	Issue(actor entities.Actor) (*entities.AuthToken, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
