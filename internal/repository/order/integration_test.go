//go:build integration

package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/entities"
	"marketplace/internal/repository/integration_test"
	"marketplace/internal/repository/order"
	service "marketplace/internal/service/order"
)

func newTestOrder(id string, status entities.OrderStatusType) entities.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return entities.Order{
		ID:                  id,
		BuyerID:             1,
		BuyerName:           "Ravi Kumar",
		BuyerPhone:          "+14155550199",
		ManufacturerID:      1,
		ManufacturerCompany: "Acme Looms",
		ManufacturerPhone:   "+14155550100",
		ProductName:         "Silk Saree",
		Price:               120.5,
		Quantity:            2,
		Total:               241,
		Category:            "textiles",
		District:            "Salem",
		State:               "TN",
		ManufactureDate:     "2026-01-15",
		Status:              status,
		OrderDate:           now,
		CreatedAt:           now,
		StatusUpdatedAt:     now,
	}
}

func TestRepository_Create_And_GetByID(t *testing.T) {
	integration_test.SetupDB(t, "")
	defer integration_test.TeardownDB(t)

	repo := order.New(integration_test.GetQuerier())
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestOrder("ORD-20260115-120000-0001", entities.OrderPending))
	require.NoError(t, err)
	assert.Equal(t, entities.OrderPending, created.Status)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 241.0, got.Total)

	_, err = repo.GetByID(ctx, "ORD-00000000-000000-0000")
	assert.ErrorIs(t, err, service.ErrOrderNotFound)

	_, err = repo.Create(ctx, newTestOrder(created.ID, entities.OrderPending))
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestRepository_List_Filters(t *testing.T) {
	integration_test.SetupDB(t, "")
	defer integration_test.TeardownDB(t)

	repo := order.New(integration_test.GetQuerier())
	ctx := context.Background()

	first := newTestOrder("ORD-20260115-120000-0001", entities.OrderPending)
	second := newTestOrder("ORD-20260115-120000-0002", entities.OrderAllowed)
	second.BuyerID = 2

	_, err := repo.Create(ctx, first)
	require.NoError(t, err)
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)

	t.Run("by buyer", func(t *testing.T) {
		got, err := repo.List(ctx, entities.OrderFilter{BuyerID: pointer.To(int64(2))})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, second.ID, got[0].ID)
	})

	t.Run("by manufacturer and status", func(t *testing.T) {
		status := entities.OrderPending
		got, err := repo.List(ctx, entities.OrderFilter{
			ManufacturerID: pointer.To(int64(1)),
			Status:         &status,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, first.ID, got[0].ID)
	})

	t.Run("no filter returns all", func(t *testing.T) {
		got, err := repo.List(ctx, entities.OrderFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestRepository_UpdateStatusIf(t *testing.T) {
	integration_test.SetupDB(t, "")
	defer integration_test.TeardownDB(t)

	repo := order.New(integration_test.GetQuerier())
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestOrder("ORD-20260115-120000-0001", entities.OrderPending))
	require.NoError(t, err)

	t.Run("matching expected status wins", func(t *testing.T) {
		updated, err := repo.UpdateStatusIf(ctx, created.ID, entities.OrderPending, entities.OrderAllowed, time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, entities.OrderAllowed, updated.Status)
	})

	t.Run("stale expected status loses", func(t *testing.T) {
		_, err := repo.UpdateStatusIf(ctx, created.ID, entities.OrderPending, entities.OrderCancelled, time.Now().UTC())
		assert.ErrorIs(t, err, service.ErrStatusConflict)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := repo.UpdateStatusIf(ctx, "ORD-00000000-000000-0000", entities.OrderPending, entities.OrderAllowed, time.Now().UTC())
		assert.ErrorIs(t, err, service.ErrOrderNotFound)
	})
}

func TestRepository_StatusHistoryAndCounts(t *testing.T) {
	integration_test.SetupDB(t, "")
	defer integration_test.TeardownDB(t)

	q := integration_test.GetQuerier()
	repo := order.New(q)
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestOrder("ORD-20260115-120000-0001", entities.OrderPending))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestOrder("ORD-20260115-120000-0002", entities.OrderPending))
	require.NoError(t, err)

	err = repo.InsertStatusHistory(ctx, entities.OrderStatusEvent{
		OrderID:        "ORD-20260115-120000-0001",
		ManufacturerID: 1,
		BuyerID:        1,
		PreviousStatus: entities.OrderPending,
		Status:         entities.OrderAllowed,
		ChangedAt:      time.Now().UTC(),
	})
	require.NoError(t, err)

	var historyCount int
	require.NoError(t, q.QueryRow(ctx, "SELECT COUNT(*) FROM order_status_history").Scan(&historyCount))
	assert.Equal(t, 1, historyCount)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, entities.OrderPending, counts[0].Status)
	assert.Equal(t, int64(2), counts[0].Count)
}
