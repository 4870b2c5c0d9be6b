package usecase

import (
	"context"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// IDashboardUseCase computes the dashboard aggregates. Stateless: every
// call reads the current collections.

type IDashboardUseCase interface {
	ComputeDashboardMetrics(ctx context.Context) (entities.DashboardMetrics, error)
	StatusDistribution(ctx context.Context) ([]entities.StatusCount, error)
	FinancialSummary(ctx context.Context) (entities.FinancialSummary, error)
}

type DashboardUseCase struct {
	orderRepo     interfaces.IServiceOrderRepository
	clientRepo    interfaces.IClientRepository
	inventoryRepo interfaces.IInventoryRepository
	txRepo        interfaces.ITransactionRepository

	// now is injectable so tests can pin the month window.
	now func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	orderRepo interfaces.IServiceOrderRepository,
	clientRepo interfaces.IClientRepository,
	inventoryRepo interfaces.IInventoryRepository,
	txRepo interfaces.ITransactionRepository,
	now func() time.Time,
) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{
		orderRepo:     orderRepo,
		clientRepo:    clientRepo,
		inventoryRepo: inventoryRepo,
		txRepo:        txRepo,
		now:           now,
	}
}

func (u *DashboardUseCase) ComputeDashboardMetrics(ctx context.Context) (entities.DashboardMetrics, error) {
	var m entities.DashboardMetrics

	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return entities.DashboardMetrics{}, err
	}
	m.TotalOrders = len(orders)
	for _, o := range orders {
		switch o.Status {
		case entities.OrderStatusInProgress:
			m.OrdersInProgress++
		case entities.OrderStatusPending:
			m.PendingOrders++
		case entities.OrderStatusCompleted:
			m.CompletedOrders++
		}
	}

	txs, err := u.txRepo.List(ctx)
	if err != nil {
		return entities.DashboardMetrics{}, err
	}
	ref := u.now()
	for _, tx := range txs {
		// Month AND year: a transaction from last year's same month is not
		// part of the current month's figures.
		if !sameMonth(tx.Date, ref) {
			continue
		}
		switch tx.Type {
		case entities.TransactionTypeIncome:
			m.MonthlyRevenue += tx.Amount
		case entities.TransactionTypeExpense:
			m.MonthlyExpenses += tx.Amount
		}
	}

	items, err := u.inventoryRepo.List(ctx)
	if err != nil {
		return entities.DashboardMetrics{}, err
	}
	for _, i := range items {
		if i.Stock <= i.MinStock {
			m.LowStockItems++
		}
	}

	clients, err := u.clientRepo.List(ctx)
	if err != nil {
		return entities.DashboardMetrics{}, err
	}
	m.ClientsCount = len(clients)

	return m, nil
}

// StatusDistribution counts orders per status, with the share of the total
// for the chart. Percentages are 0 when there are no orders.
func (u *DashboardUseCase) StatusDistribution(ctx context.Context) ([]entities.StatusCount, error) {
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.ServiceOrderStatus]int, len(entities.AllOrderStatuses))
	for _, o := range orders {
		counts[o.Status]++
	}

	total := len(orders)
	dist := make([]entities.StatusCount, 0, len(entities.AllOrderStatuses))
	for _, s := range entities.AllOrderStatuses {
		sc := entities.StatusCount{
			Status: s,
			Label:  s.DisplayLabel(),
			Count:  counts[s],
		}
		if total > 0 {
			sc.Percentage = float64(sc.Count) / float64(total) * 100
		}
		dist = append(dist, sc)
	}
	return dist, nil
}

// FinancialSummary sums every transaction by type, all-time.
func (u *DashboardUseCase) FinancialSummary(ctx context.Context) (entities.FinancialSummary, error) {
	txs, err := u.txRepo.List(ctx)
	if err != nil {
		return entities.FinancialSummary{}, err
	}

	var s entities.FinancialSummary
	for _, tx := range txs {
		switch tx.Type {
		case entities.TransactionTypeIncome:
			s.TotalIncome += tx.Amount
		case entities.TransactionTypeExpense:
			s.TotalExpenses += tx.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpenses
	return s, nil
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
