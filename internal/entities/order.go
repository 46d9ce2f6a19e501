package entities

import "time"

// Order is an immutable creation snapshot plus a mutable status. The
// buyer/manufacturer/product fields are copied at creation time and never
// recomputed from the source records afterwards.
type Order struct {
	ID string

	BuyerID    int64
	BuyerName  string
	BuyerPhone string

	ManufacturerID      int64
	ManufacturerCompany string
	ManufacturerPhone   string

	ProductName     string
	Price           float64
	Quantity        int
	Total           float64
	Category        string
	District        string
	State           string
	ManufactureDate string

	Status          OrderStatusType
	OrderDate       time.Time
	CreatedAt       time.Time
	StatusUpdatedAt time.Time
}

// OrderDraft is a buyer's order request before the snapshot is taken.
type OrderDraft struct {
	ManufacturerID *int64
	ProductName    *string
	Quantity       *int
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderAllowed   OrderStatusType = "allowed"
	OrderApproved  OrderStatusType = "approved"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderAllowed, OrderApproved, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// NextStatuses returns the legal transition targets from s. Terminal
// states return an empty (non-nil) set.
func (s OrderStatusType) NextStatuses() []OrderStatusType {
	switch s {
	case OrderPending:
		return []OrderStatusType{OrderAllowed, OrderCancelled}
	case OrderAllowed:
		return []OrderStatusType{OrderApproved, OrderCancelled}
	case OrderApproved:
		return []OrderStatusType{OrderDelivered, OrderCancelled}
	default:
		return []OrderStatusType{}
	}
}

func (s OrderStatusType) CanTransitionTo(next OrderStatusType) bool {
	for _, allowed := range s.NextStatuses() {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatusType) IsTerminal() bool {
	return len(s.NextStatuses()) == 0 && s.IsValid()
}

// OrderStatusEvent is emitted after every applied transition and consumed
// by the history worker.
type OrderStatusEvent struct {
	OrderID        string          `json:"order_id"`
	ManufacturerID int64           `json:"manufacturer_id"`
	BuyerID        int64           `json:"buyer_id"`
	PreviousStatus OrderStatusType `json:"previous_status"`
	Status         OrderStatusType `json:"status"`
	ChangedAt      time.Time       `json:"changed_at"`
}

// OrderFilter narrows order listings. Nil fields are not applied.
type OrderFilter struct {
	BuyerID        *int64
	ManufacturerID *int64
	Status         *OrderStatusType
}

// OrderStatusCount is a per-status order count used by the stats task.
type OrderStatusCount struct {
	Status OrderStatusType
	Count  int64
}
