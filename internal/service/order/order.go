package order

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/entities"
)

type Service struct {
	repository Repository
	accounts   AccountService
	publisher  EventPublisher
	idFactory  IDFactory
}

func New(repository Repository, accounts AccountService, publisher EventPublisher, idFactory IDFactory) *Service {
	return &Service{
		repository: repository,
		accounts:   accounts,
		publisher:  publisher,
		idFactory:  idFactory,
	}
}

// CreateOrder snapshots the product from the manufacturer's current
// catalog. Price, category and origin fields are taken from the catalog
// entry, never from the request, and the total is always price times
// quantity.
func (s *Service) CreateOrder(ctx context.Context, actor entities.Actor, draft entities.OrderDraft) (*entities.Order, error) {
	if actor.Kind != entities.ActorBuyer {
		return nil, ErrActorNotAllowed
	}

	if draft.ManufacturerID == nil || draft.ProductName == nil || draft.Quantity == nil {
		return nil, ErrMissingRequiredFields
	}
	if *draft.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	manufacturer, err := s.accounts.GetManufacturer(ctx, *draft.ManufacturerID)
	if err != nil {
		return nil, fmt.Errorf("resolve manufacturer for order: %w", err)
	}

	product, found := findProduct(manufacturer.Products, *draft.ProductName)
	if !found {
		return nil, ErrProductNotFound
	}

	buyer, err := s.accounts.GetBuyer(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve buyer for order: %w", err)
	}

	now := time.Now().UTC()
	orderEntity := entities.Order{
		ID:                  s.idFactory.NewOrderID(),
		BuyerID:             buyer.ID,
		BuyerName:           buyer.Name,
		BuyerPhone:          buyer.Phone,
		ManufacturerID:      manufacturer.ID,
		ManufacturerCompany: manufacturer.CompanyName,
		ManufacturerPhone:   manufacturer.Phone,
		ProductName:         product.Name,
		Price:               product.Price,
		Quantity:            *draft.Quantity,
		Total:               product.Price * float64(*draft.Quantity),
		Category:            product.Category,
		District:            product.District,
		State:               product.State,
		ManufactureDate:     product.ManufactureDate,
		Status:              entities.OrderPending,
		OrderDate:           now,
		CreatedAt:           now,
		StatusUpdatedAt:     now,
	}

	created, err := s.repository.Create(ctx, orderEntity)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return created, nil
}

// GetOrders lists the actor's own side of the marketplace: buyers see
// orders they placed, manufacturers see orders placed with them.
func (s *Service) GetOrders(ctx context.Context, actor entities.Actor, status *entities.OrderStatusType) ([]entities.Order, error) {
	if status != nil && !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedStatus, *status)
	}

	filter := entities.OrderFilter{Status: status}
	switch actor.Kind {
	case entities.ActorBuyer:
		filter.BuyerID = &actor.ID
	case entities.ActorManufacturer:
		filter.ManufacturerID = &actor.ID
	default:
		return nil, ErrActorNotAllowed
	}

	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, actor entities.Actor, id string) (*entities.Order, error) {
	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if !isParticipant(actor, orderEntity) {
		return nil, ErrNotOrderOwner
	}

	return orderEntity, nil
}

// ChangeStatus applies one transition of the order lifecycle. The write
// is conditional on the status the caller observed, so two concurrent
// calls from the same state cannot both win.
func (s *Service) ChangeStatus(ctx context.Context, actor entities.Actor, id string, next entities.OrderStatusType) (*entities.Order, error) {
	if actor.Kind != entities.ActorManufacturer {
		return nil, ErrActorNotAllowed
	}
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedStatus, next)
	}

	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order for status change: %w", err)
	}

	if orderEntity.ManufacturerID != actor.ID {
		return nil, ErrNotOrderOwner
	}

	if !orderEntity.Status.CanTransitionTo(next) {
		return nil, &InvalidTransitionError{
			From:      orderEntity.Status,
			Requested: next,
			Allowed:   orderEntity.Status.NextStatuses(),
		}
	}

	updated, err := s.repository.UpdateStatusIf(ctx, id, orderEntity.Status, next, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("apply status change: %w", err)
	}

	OrderStatusTransitionTotal.WithLabelValues(orderEntity.Status.String(), next.String()).Inc()

	s.publisher.OrderStatusChanged(ctx, entities.OrderStatusEvent{
		OrderID:        updated.ID,
		ManufacturerID: updated.ManufacturerID,
		BuyerID:        updated.BuyerID,
		PreviousStatus: orderEntity.Status,
		Status:         updated.Status,
		ChangedAt:      updated.StatusUpdatedAt,
	})

	return updated, nil
}

func (s *Service) CountOrdersByStatus(ctx context.Context) ([]entities.OrderStatusCount, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}

	return counts, nil
}

func findProduct(products []entities.Product, name string) (entities.Product, bool) {
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}
	return entities.Product{}, false
}

func isParticipant(actor entities.Actor, orderEntity *entities.Order) bool {
	switch actor.Kind {
	case entities.ActorBuyer:
		return orderEntity.BuyerID == actor.ID
	case entities.ActorManufacturer:
		return orderEntity.ManufacturerID == actor.ID
	default:
		return false
	}
}
