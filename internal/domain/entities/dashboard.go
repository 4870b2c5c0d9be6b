package entities

// DashboardMetrics aggregates the dashboard figures. It is a snapshot:
// recomputed on demand from the current collections, never stored.
type DashboardMetrics struct {
	TotalOrders      int     `json:"total_orders"`
	OrdersInProgress int     `json:"orders_in_progress"`
	PendingOrders    int     `json:"pending_orders"`
	CompletedOrders  int     `json:"completed_orders"`
	MonthlyRevenue   float64 `json:"monthly_revenue"`
	MonthlyExpenses  float64 `json:"monthly_expenses"`
	LowStockItems    int     `json:"low_stock_items"`
	ClientsCount     int     `json:"clients_count"`
}

// StatusCount is one slice of the order status distribution chart.
// Percentage is 0 when there are no orders at all.
type StatusCount struct {
	Status     ServiceOrderStatus `json:"status"`
	Label      string             `json:"label"`
	Count      int                `json:"count"`
	Percentage float64            `json:"percentage"`
}

// FinancialSummary holds the all-time totals of the financial view.
type FinancialSummary struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	Balance       float64 `json:"balance"`
}
