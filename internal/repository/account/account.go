package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/account"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateManufacturer(ctx context.Context, manufacturer entities.Manufacturer) (int64, error) {
	query := `
		INSERT INTO manufacturers (company_name, owner_name, username, email, phone, city, state, password_hash, products)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		manufacturer.CompanyName,
		manufacturer.OwnerName,
		manufacturer.Username,
		manufacturer.Email,
		manufacturer.Phone,
		manufacturer.City,
		manufacturer.State,
		manufacturer.PasswordHash,
		FromProductDomainList(manufacturer.Products),
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, account.ErrConflict
		}
		return 0, fmt.Errorf("unexpected account repository create manufacturer error: %w", err)
	}

	return id, nil
}

// GetManufacturerByLogin matches either username or email and is the only
// manufacturer read that returns the password hash.
func (r *Repository) GetManufacturerByLogin(ctx context.Context, login string) (*entities.Manufacturer, error) {
	query := `
		SELECT id, company_name, owner_name, username, email, phone, city, state, password_hash, products, created_at, updated_at
		FROM manufacturers
		WHERE username = $1 OR email = $1
	`

	var model ManufacturerDB
	err := r.querier.QueryRow(ctx, query, login).Scan(
		&model.ID,
		&model.CompanyName,
		&model.OwnerName,
		&model.Username,
		&model.Email,
		&model.Phone,
		&model.City,
		&model.State,
		&model.PasswordHash,
		&model.Products,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrManufacturerNotFound
		}
		return nil, fmt.Errorf("unexpected account repository get manufacturer by login error: %w", err)
	}

	return ToManufacturerDomain(&model), nil
}

func (r *Repository) GetManufacturerByID(ctx context.Context, id int64) (*entities.Manufacturer, error) {
	query := `
		SELECT id, company_name, owner_name, username, email, phone, city, state, products, created_at, updated_at
		FROM manufacturers
		WHERE id = $1
	`

	var model ManufacturerDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&model.ID,
		&model.CompanyName,
		&model.OwnerName,
		&model.Username,
		&model.Email,
		&model.Phone,
		&model.City,
		&model.State,
		&model.Products,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrManufacturerNotFound
		}
		return nil, fmt.Errorf("unexpected account repository get manufacturer by id error: %w", err)
	}

	return ToManufacturerDomain(&model), nil
}

func (r *Repository) ListManufacturers(ctx context.Context) ([]entities.Manufacturer, error) {
	query := `
		SELECT id, company_name, owner_name, username, email, phone, city, state, products, created_at, updated_at
		FROM manufacturers
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository list manufacturers error: %w", err)
	}
	defer rows.Close()

	models := make([]ManufacturerDB, 0, 8)
	for rows.Next() {
		var model ManufacturerDB
		err := rows.Scan(
			&model.ID,
			&model.CompanyName,
			&model.OwnerName,
			&model.Username,
			&model.Email,
			&model.Phone,
			&model.City,
			&model.State,
			&model.Products,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected account repository list manufacturers error: %w", err)
		}
		models = append(models, model)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository list manufacturers error: %w", err)
	}

	return ToManufacturerDomainList(models), nil
}

// UpdateProducts replaces the whole catalog in one statement.
func (r *Repository) UpdateProducts(ctx context.Context, manufacturerID int64, products []entities.Product) error {
	query := `
		UPDATE manufacturers
		SET products = $2,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, manufacturerID, FromProductDomainList(products))
	if err != nil {
		return fmt.Errorf("unexpected account repository update products error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return account.ErrManufacturerNotFound
	}

	return nil
}

func (r *Repository) CreateBuyer(ctx context.Context, buyer entities.Buyer) (int64, error) {
	query := `
		INSERT INTO buyers (name, username, email, phone, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		buyer.Name,
		buyer.Username,
		buyer.Email,
		buyer.Phone,
		buyer.PasswordHash,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, account.ErrConflict
		}
		return 0, fmt.Errorf("unexpected account repository create buyer error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetBuyerByLogin(ctx context.Context, login string) (*entities.Buyer, error) {
	query := `
		SELECT id, name, username, email, phone, password_hash, created_at
		FROM buyers
		WHERE username = $1 OR email = $1
	`

	var model BuyerDB
	err := r.querier.QueryRow(ctx, query, login).Scan(
		&model.ID,
		&model.Name,
		&model.Username,
		&model.Email,
		&model.Phone,
		&model.PasswordHash,
		&model.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrBuyerNotFound
		}
		return nil, fmt.Errorf("unexpected account repository get buyer by login error: %w", err)
	}

	return ToBuyerDomain(&model), nil
}

func (r *Repository) GetBuyerByID(ctx context.Context, id int64) (*entities.Buyer, error) {
	query := `
		SELECT id, name, username, email, phone, created_at
		FROM buyers
		WHERE id = $1
	`

	var model BuyerDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&model.ID,
		&model.Name,
		&model.Username,
		&model.Email,
		&model.Phone,
		&model.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrBuyerNotFound
		}
		return nil, fmt.Errorf("unexpected account repository get buyer by id error: %w", err)
	}

	return ToBuyerDomain(&model), nil
}
