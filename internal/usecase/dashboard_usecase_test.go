package usecase

import (
	"context"
	"testing"
	"time"

	"oficina_xpto/internal/adapter/persistence/memory"
	"oficina_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The dashboard derives everything from stored records, so these tests run
// against the in-memory repositories instead of mocks.

type dashboardFixture struct {
	orders    *memory.ServiceOrderMemoryRepository
	clients   *memory.ClientMemoryRepository
	inventory *memory.InventoryMemoryRepository
	txs       *memory.TransactionMemoryRepository
	uc        *DashboardUseCase
}

func newDashboardFixture(now func() time.Time) *dashboardFixture {
	f := &dashboardFixture{
		orders:    memory.NewServiceOrderMemoryRepository(),
		clients:   memory.NewClientMemoryRepository(),
		inventory: memory.NewInventoryMemoryRepository(),
		txs:       memory.NewTransactionMemoryRepository(),
	}
	f.uc = NewDashboardUseCase(f.orders, f.clients, f.inventory, f.txs, now)
	return f
}

func TestDashboardUseCase_ComputeDashboardMetrics(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := newDashboardFixture(func() time.Time { return ref })
	ctx := context.Background()

	statuses := []entities.ServiceOrderStatus{
		entities.OrderStatusPending,
		entities.OrderStatusInProgress,
		entities.OrderStatusInProgress,
		entities.OrderStatusCompleted,
		entities.OrderStatusDelivered,
	}
	for i, s := range statuses {
		_, err := f.orders.Create(ctx, entities.ServiceOrder{ID: string(rune('a' + i)), Status: s})
		require.NoError(t, err)
	}

	_, err := f.clients.Create(ctx, entities.Client{ID: "c-1"})
	require.NoError(t, err)
	_, err = f.clients.Create(ctx, entities.Client{ID: "c-2"})
	require.NoError(t, err)

	// Same month of a previous year must stay out of the monthly figures.
	txs := []entities.Transaction{
		{ID: "t-1", Type: entities.TransactionTypeIncome, Amount: 500, Date: ref},
		{ID: "t-2", Type: entities.TransactionTypeIncome, Amount: 300, Date: ref.AddDate(-1, 0, 0)},
		{ID: "t-3", Type: entities.TransactionTypeExpense, Amount: 120, Date: ref.AddDate(0, 0, -3)},
		{ID: "t-4", Type: entities.TransactionTypeExpense, Amount: 80, Date: ref.AddDate(0, -1, 0)},
	}
	for _, tx := range txs {
		_, err := f.txs.Create(ctx, tx)
		require.NoError(t, err)
	}

	items := []entities.InventoryItem{
		{ID: "i-1", Stock: 8, MinStock: 10},
		{ID: "i-2", Stock: 10, MinStock: 10},
		{ID: "i-3", Stock: 11, MinStock: 10},
		{ID: "i-4", Stock: 0, MinStock: 0},
	}
	for _, it := range items {
		_, err := f.inventory.Create(ctx, it)
		require.NoError(t, err)
	}

	m, err := f.uc.ComputeDashboardMetrics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, m.TotalOrders)
	assert.Equal(t, 2, m.OrdersInProgress)
	assert.Equal(t, 1, m.PendingOrders)
	assert.Equal(t, 1, m.CompletedOrders)
	assert.Equal(t, 500.0, m.MonthlyRevenue)
	assert.Equal(t, 120.0, m.MonthlyExpenses)
	assert.Equal(t, 3, m.LowStockItems)
	assert.Equal(t, 2, m.ClientsCount)
}

func TestDashboardUseCase_StatusDistribution(t *testing.T) {
	t.Run("no orders yields zero percentages", func(t *testing.T) {
		f := newDashboardFixture(nil)

		dist, err := f.uc.StatusDistribution(context.Background())
		require.NoError(t, err)
		require.Len(t, dist, len(entities.AllOrderStatuses))
		for _, sc := range dist {
			assert.Zero(t, sc.Count)
			assert.Zero(t, sc.Percentage)
			assert.NotEmpty(t, sc.Label)
		}
	})

	t.Run("percentages over the total", func(t *testing.T) {
		f := newDashboardFixture(nil)
		ctx := context.Background()

		statuses := []entities.ServiceOrderStatus{
			entities.OrderStatusPending,
			entities.OrderStatusPending,
			entities.OrderStatusInProgress,
			entities.OrderStatusCompleted,
		}
		for i, s := range statuses {
			_, err := f.orders.Create(ctx, entities.ServiceOrder{ID: string(rune('a' + i)), Status: s})
			require.NoError(t, err)
		}

		dist, err := f.uc.StatusDistribution(ctx)
		require.NoError(t, err)

		byStatus := map[entities.ServiceOrderStatus]entities.StatusCount{}
		for _, sc := range dist {
			byStatus[sc.Status] = sc
		}
		assert.Equal(t, 2, byStatus[entities.OrderStatusPending].Count)
		assert.Equal(t, 50.0, byStatus[entities.OrderStatusPending].Percentage)
		assert.Equal(t, 25.0, byStatus[entities.OrderStatusInProgress].Percentage)
		assert.Equal(t, 0, byStatus[entities.OrderStatusCanceled].Count)
		assert.Equal(t, "Pendente", byStatus[entities.OrderStatusPending].Label)
	})
}

func TestDashboardUseCase_FinancialSummary(t *testing.T) {
	f := newDashboardFixture(nil)
	ctx := context.Background()

	// All-time: the reference date plays no role here.
	txs := []entities.Transaction{
		{ID: "t-1", Type: entities.TransactionTypeIncome, Amount: 1000, Date: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "t-2", Type: entities.TransactionTypeIncome, Amount: 250.5, Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "t-3", Type: entities.TransactionTypeExpense, Amount: 400, Date: time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, tx := range txs {
		_, err := f.txs.Create(ctx, tx)
		require.NoError(t, err)
	}

	s, err := f.uc.FinancialSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1250.5, s.TotalIncome)
	assert.Equal(t, 400.0, s.TotalExpenses)
	assert.Equal(t, 850.5, s.Balance)
}
