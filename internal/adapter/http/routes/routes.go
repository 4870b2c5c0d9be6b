package routes

import (
	"context"
	"log"
	"strconv"

	_ "oficina_xpto/docs" // This will be auto-generated
	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/persistence/memory"
	repository2 "oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/config"
	"oficina_xpto/internal/infrastructure/database"
	"oficina_xpto/internal/infrastructure/idgen"
	"oficina_xpto/internal/infrastructure/payments"
	"oficina_xpto/internal/infrastructure/seed"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.App.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

type repositories struct {
	clients      interfaces.IClientRepository
	vehicles     interfaces.IVehicleRepository
	orders       interfaces.IServiceOrderRepository
	inventory    interfaces.IInventoryRepository
	transactions interfaces.ITransactionRepository
}

func newRepositories(cfg *config.Config) repositories {
	if cfg.Storage.Driver == config.StorageDriverDynamoDB {
		ddb := database.ConnectDynamoDB(cfg)
		return repositories{
			clients:      repository2.NewClientDynamoRepository(ddb),
			vehicles:     repository2.NewVehicleDynamoRepository(ddb),
			orders:       repository2.NewServiceOrderDynamoRepository(ddb),
			inventory:    repository2.NewInventoryDynamoRepository(ddb),
			transactions: repository2.NewTransactionDynamoRepository(ddb),
		}
	}

	return repositories{
		clients:      memory.NewClientMemoryRepository(),
		vehicles:     memory.NewVehicleMemoryRepository(),
		orders:       memory.NewServiceOrderMemoryRepository(),
		inventory:    memory.NewInventoryMemoryRepository(),
		transactions: memory.NewTransactionMemoryRepository(),
	}
}

func getRoutes(cfg *config.Config) {
	repos := newRepositories(cfg)
	log.Printf("[startup][routes] storage driver=%s", cfg.Storage.Driver)

	ids := idgen.UUIDGenerator{}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	clientUseCase := usecase.NewClientUseCase(repos.clients, repos.vehicles, ids)
	vehicleUseCase := usecase.NewVehicleUseCase(repos.vehicles, repos.clients, repos.orders, ids)
	orderUseCase := usecase.NewServiceOrderUseCase(repos.orders, repos.clients, repos.vehicles, ids)
	inventoryUseCase := usecase.NewInventoryUseCase(repos.inventory, ids)
	transactionUseCase := usecase.NewTransactionUseCase(repos.transactions, repos.orders, paymentGateway, ids)
	dashboardUseCase := usecase.NewDashboardUseCase(repos.orders, repos.clients, repos.inventory, repos.transactions, nil)

	if cfg.Storage.SeedDemoData {
		if err := seed.DemoData(context.Background(), seed.UseCases{
			Clients:      clientUseCase,
			Vehicles:     vehicleUseCase,
			Orders:       orderUseCase,
			Inventory:    inventoryUseCase,
			Transactions: transactionUseCase,
		}); err != nil {
			log.Printf("[startup][seed] demo data load failed: %v", err)
		}
	}

	clientHandler := handlers.NewClientHandler(clientUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)
	transactionHandler := handlers.NewTransactionHandler(transactionUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, clientHandler, vehicleHandler, orderHandler, inventoryHandler)
	addFinancialRoutes(v1, transactionHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
