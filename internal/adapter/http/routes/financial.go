package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTransactions = "/transactions"
	PathDashboard    = "/dashboard"
	PathFinancial    = "/financial"
)

func addFinancialRoutes(rg *gin.RouterGroup, transactionHandler *handlers.TransactionHandler, dashboardHandler *handlers.DashboardHandler) {
	transactions := rg.Group(PathTransactions)
	{
		transactions.GET("", transactionHandler.List)
		transactions.GET("/:id", transactionHandler.GetByID)
		transactions.POST("", transactionHandler.Create)
		transactions.PUT("/:id", transactionHandler.Update)
		transactions.DELETE("/:id", transactionHandler.Delete)
		transactions.POST("/charge/:order_id", transactionHandler.ChargeOrder)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/metrics", dashboardHandler.Metrics)
		dashboard.GET("/status-distribution", dashboardHandler.StatusDistribution)
	}

	financial := rg.Group(PathFinancial)
	{
		financial.GET("/summary", dashboardHandler.FinancialSummary)
	}
}
