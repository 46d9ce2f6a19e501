package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, buyer_id, buyer_name, buyer_phone,
		manufacturer_id, manufacturer_company, manufacturer_phone,
		product_name, price, quantity, total, category, district, state, manufacture_date,
		status, order_date, created_at, status_updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `
		INSERT INTO orders (id, buyer_id, buyer_name, buyer_phone,
			manufacturer_id, manufacturer_company, manufacturer_phone,
			product_name, price, quantity, total, category, district, state, manufacture_date,
			status, order_date, created_at, status_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + orderColumns

	var model OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.BuyerID,
		orderEntity.BuyerName,
		orderEntity.BuyerPhone,
		orderEntity.ManufacturerID,
		orderEntity.ManufacturerCompany,
		orderEntity.ManufacturerPhone,
		orderEntity.ProductName,
		orderEntity.Price,
		orderEntity.Quantity,
		orderEntity.Total,
		orderEntity.Category,
		orderEntity.District,
		orderEntity.State,
		orderEntity.ManufactureDate,
		orderEntity.Status.String(),
		orderEntity.OrderDate,
		orderEntity.CreatedAt,
		orderEntity.StatusUpdatedAt,
	).Scan(scanTargets(&model)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	var model OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&model)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get by id error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select("id", "buyer_id", "buyer_name", "buyer_phone",
			"manufacturer_id", "manufacturer_company", "manufacturer_phone",
			"product_name", "price", "quantity", "total", "category", "district", "state", "manufacture_date",
			"status", "order_date", "created_at", "status_updated_at").
		From("orders").
		OrderBy("created_at DESC", "id")

	if filter.BuyerID != nil {
		builder = builder.Where(sq.Eq{"buyer_id": *filter.BuyerID})
	}
	if filter.ManufacturerID != nil {
		builder = builder.Where(sq.Eq{"manufacturer_id": *filter.ManufacturerID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]OrderDB, 0, 8)
	for rows.Next() {
		var model OrderDB
		if err := rows.Scan(scanTargets(&model)...); err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		models = append(models, model)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(models), nil
}

// UpdateStatusIf applies the transition only when the stored status still
// equals expected. Exactly one of two concurrent callers with the same
// expected status wins.
func (r *Repository) UpdateStatusIf(ctx context.Context, id string, expected, next entities.OrderStatusType, at time.Time) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET status = $3,
		    status_updated_at = $4
		WHERE id = $1 AND status = $2
		RETURNING ` + orderColumns

	var model OrderDB
	err := r.querier.QueryRow(ctx, query, id, expected.String(), next.String(), at).Scan(scanTargets(&model)...)
	if err == nil {
		return ToDomain(&model), nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	// Zero rows either means the order does not exist or someone else
	// moved it first. Tell those apart for the caller.
	var exists bool
	checkErr := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists)
	if checkErr != nil {
		return nil, fmt.Errorf("unexpected order repository update status error: %w", checkErr)
	}
	if !exists {
		return nil, order.ErrOrderNotFound
	}

	return nil, order.ErrStatusConflict
}

func (r *Repository) InsertStatusHistory(ctx context.Context, event entities.OrderStatusEvent) error {
	query := `
		INSERT INTO order_status_history (order_id, manufacturer_id, buyer_id, previous_status, status, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		event.OrderID,
		event.ManufacturerID,
		event.BuyerID,
		event.PreviousStatus.String(),
		event.Status.String(),
		event.ChangedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository insert status history error: %w", err)
	}

	return nil
}

func (r *Repository) CountByStatus(ctx context.Context) ([]entities.OrderStatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
	}
	defer rows.Close()

	counts := make([]entities.OrderStatusCount, 0, 5)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
		}
		counts = append(counts, entities.OrderStatusCount{
			Status: entities.OrderStatusType(status),
			Count:  count,
		})
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
	}

	return counts, nil
}

func scanTargets(model *OrderDB) []interface{} {
	return []interface{}{
		&model.ID,
		&model.BuyerID,
		&model.BuyerName,
		&model.BuyerPhone,
		&model.ManufacturerID,
		&model.ManufacturerCompany,
		&model.ManufacturerPhone,
		&model.ProductName,
		&model.Price,
		&model.Quantity,
		&model.Total,
		&model.Category,
		&model.District,
		&model.State,
		&model.ManufactureDate,
		&model.Status,
		&model.OrderDate,
		&model.CreatedAt,
		&model.StatusUpdatedAt,
	}
}
