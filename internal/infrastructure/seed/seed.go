// Package seed loads a small demo dataset through the use cases, so every
// record passes the same validation and integrity rules as user input.
// Enabled with SEED_DEMO_DATA=true; meant for local runs against the memory
// driver.
package seed

import (
	"context"
	"log"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

type UseCases struct {
	Clients      usecase.IClientUseCase
	Vehicles     usecase.IVehicleUseCase
	Orders       usecase.IServiceOrderUseCase
	Inventory    usecase.IInventoryUseCase
	Transactions usecase.ITransactionUseCase
}

// DemoData inserts the sample workshop dataset. Errors abort the load and
// are returned to the caller; a partially seeded store is fine for demos.
func DemoData(ctx context.Context, uc UseCases) error {
	clients := []usecase.CreateClientInput{
		{Name: "João Silva", Email: "joao.silva@email.com", Phone: "11987654321", Document: "12345678900", Address: "Rua das Flores, 123"},
		{Name: "Maria Oliveira", Email: "maria.oliveira@email.com", Phone: "11912345678", Document: "98765432100", Address: "Av. Paulista, 1000"},
		{Name: "Pedro Santos", Email: "pedro.santos@email.com", Phone: "11998765432", Document: "45678912300", Address: "Rua Augusta, 500"},
	}
	clientIDs := make([]string, 0, len(clients))
	for _, in := range clients {
		c, err := uc.Clients.Create(ctx, in)
		if err != nil {
			return err
		}
		clientIDs = append(clientIDs, c.ID)
	}

	vehicles := []usecase.CreateVehicleInput{
		{Plate: "ABC-1234", Model: "Onix", Brand: "Chevrolet", Year: 2020, Color: "Prata", Chassis: "9BGKS48BOOG123456", Mileage: 45000, ClientID: clientIDs[0]},
		{Plate: "DEF-5678", Model: "HB20", Brand: "Hyundai", Year: 2019, Color: "Branco", Chassis: "9BGKT48AOOG654321", Mileage: 60000, ClientID: clientIDs[1]},
		{Plate: "GHI-9012", Model: "Gol", Brand: "Volkswagen", Year: 2018, Color: "Preto", Chassis: "9BFKS48COOG987654", Mileage: 75000, ClientID: clientIDs[2]},
	}
	vehicleIDs := make([]string, 0, len(vehicles))
	for _, in := range vehicles {
		v, err := uc.Vehicles.Create(ctx, in)
		if err != nil {
			return err
		}
		vehicleIDs = append(vehicleIDs, v.ID)
	}

	exit := time.Now().UTC()
	orders := []usecase.CreateServiceOrderInput{
		{
			ClientID: clientIDs[0], VehicleID: vehicleIDs[0],
			Status: entities.OrderStatusCompleted, ExitDate: &exit,
			Items: []usecase.ServiceOrderItemInput{
				{Description: "Troca de óleo", Quantity: 1, UnitPrice: 150, Type: entities.ItemTypeService},
				{Description: "Filtro de óleo", Quantity: 1, UnitPrice: 50, Type: entities.ItemTypePart},
			},
			Observations: "Cliente relatou barulho ao frear",
		},
		{
			ClientID: clientIDs[1], VehicleID: vehicleIDs[1],
			Status: entities.OrderStatusInProgress,
			Items: []usecase.ServiceOrderItemInput{
				{Description: "Revisão completa", Quantity: 1, UnitPrice: 500, Type: entities.ItemTypeService},
				{Description: "Pastilha de freio", Quantity: 4, UnitPrice: 75, Type: entities.ItemTypePart},
			},
			Observations: "Veículo para revisão de 60.000 km",
		},
		{
			ClientID: clientIDs[2], VehicleID: vehicleIDs[2],
			Status: entities.OrderStatusWaitingParts,
			Items: []usecase.ServiceOrderItemInput{
				{Description: "Troca de correia dentada", Quantity: 1, UnitPrice: 350, Type: entities.ItemTypeService},
				{Description: "Kit correia dentada", Quantity: 1, UnitPrice: 250, Type: entities.ItemTypePart},
			},
			Observations: "Aguardando peça importada",
		},
	}
	orderIDs := make([]string, 0, len(orders))
	for _, in := range orders {
		o, err := uc.Orders.Create(ctx, in)
		if err != nil {
			return err
		}
		orderIDs = append(orderIDs, o.ID)
	}

	lastPurchase := time.Now().UTC().AddDate(0, -1, 0)
	items := []usecase.CreateInventoryItemInput{
		{Code: "FO-001", Name: "Filtro de Óleo", Description: "Filtro de óleo para carros populares", Category: "Filtros", CostPrice: 30, SalePrice: 50, Stock: 25, MinStock: 10, SupplierID: "1", LastPurchase: &lastPurchase},
		{Code: "PF-001", Name: "Pastilha de Freio", Description: "Jogo de pastilhas de freio dianteiras", Category: "Freios", CostPrice: 45, SalePrice: 75, Stock: 8, MinStock: 10, SupplierID: "2", LastPurchase: &lastPurchase},
		{Code: "OL-001", Name: "Óleo de Motor 5W30", Description: "Óleo sintético para motor 5W30", Category: "Lubrificantes", CostPrice: 90, SalePrice: 150, Stock: 20, MinStock: 15, SupplierID: "1", LastPurchase: &lastPurchase},
	}
	for _, in := range items {
		if _, err := uc.Inventory.Create(ctx, in); err != nil {
			return err
		}
	}

	today := time.Now().UTC()
	txs := []usecase.CreateTransactionInput{
		{Description: "Pagamento OS00001", Type: entities.TransactionTypeIncome, Amount: 200, Date: today, Category: "Serviços", PaymentMethod: entities.PaymentMethodCreditCard, Status: entities.TransactionStatusCompleted, RelatedOrderID: orderIDs[0]},
		{Description: "Compra de peças", Type: entities.TransactionTypeExpense, Amount: 1500, Date: today, Category: "Estoque", PaymentMethod: entities.PaymentMethodBankTransfer, Status: entities.TransactionStatusCompleted},
		{Description: "Adiantamento OS00002", Type: entities.TransactionTypeIncome, Amount: 400, Date: today, Category: "Serviços", PaymentMethod: entities.PaymentMethodPix, Status: entities.TransactionStatusCompleted, RelatedOrderID: orderIDs[1]},
		{Description: "Conta de luz", Type: entities.TransactionTypeExpense, Amount: 350, Date: today, Category: "Despesas Operacionais", PaymentMethod: entities.PaymentMethodBankSlip, Status: entities.TransactionStatusPending},
	}
	for _, in := range txs {
		if _, err := uc.Transactions.Create(ctx, in); err != nil {
			return err
		}
	}

	log.Printf("[seed] demo data loaded clients=%d vehicles=%d orders=%d items=%d transactions=%d",
		len(clients), len(vehicles), len(orders), len(items), len(txs))
	return nil
}
