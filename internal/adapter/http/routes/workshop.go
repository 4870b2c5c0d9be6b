package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients   = "/clients"
	PathVehicles  = "/vehicles"
	PathOrders    = "/orders"
	PathInventory = "/inventory"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	vehicleHandler *handlers.VehicleHandler,
	orderHandler *handlers.ServiceOrderHandler,
	inventoryHandler *handlers.InventoryHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.GetByID)
		clients.POST("", clientHandler.Create)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	vehicles := rg.Group(PathVehicles)
	{
		// GET "" accepts ?client_id= to narrow to one client's fleet.
		vehicles.GET("", vehicleHandler.List)
		vehicles.GET("/:id", vehicleHandler.GetByID)
		vehicles.POST("", vehicleHandler.Create)
		vehicles.PUT("/:id", vehicleHandler.Update)
		vehicles.DELETE("/:id", vehicleHandler.Delete)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.GetByID)
		orders.POST("", orderHandler.Create)
		orders.PUT("/:id", orderHandler.Update)
		orders.DELETE("/:id", orderHandler.Delete)
	}

	inventory := rg.Group(PathInventory)
	{
		inventory.GET("", inventoryHandler.List)
		inventory.GET("/:id", inventoryHandler.GetByID)
		inventory.POST("", inventoryHandler.Create)
		inventory.PUT("/:id", inventoryHandler.Update)
		inventory.DELETE("/:id", inventoryHandler.Delete)
	}
}
