package order_stats

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type Service interface {
	CountOrdersByStatus(ctx context.Context) ([]entities.OrderStatusCount, error)
}

// OrderStats periodically refreshes the per-status order count gauge.
type OrderStats struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderStats(log logger.Logger, service Service, interval time.Duration) *OrderStats {
	return &OrderStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderStats) TTL() time.Duration {
	return o.interval
}

func (o *OrderStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountOrdersByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	// Statuses absent from the result have zero orders. Reset first so a
	// drained status does not keep its stale count.
	for _, status := range []entities.OrderStatusType{
		entities.OrderPending,
		entities.OrderAllowed,
		entities.OrderApproved,
		entities.OrderDelivered,
		entities.OrderCancelled,
	} {
		OrdersByStatus.WithLabelValues(status.String()).Set(0)
	}
	for _, c := range counts {
		OrdersByStatus.WithLabelValues(c.Status.String()).Set(float64(c.Count))
	}

	o.log.With(
		logger.NewField("statuses", len(counts)),
	).Info("order stats refreshed")

	return nil
}

func (o *OrderStats) Info() string {
	return "order stats"
}
