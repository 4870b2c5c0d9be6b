package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "service_orders"
	ordersVehicleIDIndex   = "vehicle_id-index"

	// The order-number sequence lives in the orders table as a reserved
	// record, bumped atomically with UpdateItem ADD.
	orderSequenceKey = "order-number-counter"
)

type serviceOrderLineItem struct {
	ID          string  `dynamodbav:"id"`
	Description string  `dynamodbav:"description"`
	Quantity    int     `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	Type        string  `dynamodbav:"type"`
}

type serviceOrderItem struct {
	ID           string                 `dynamodbav:"id"`
	Number       string                 `dynamodbav:"number"`
	ClientID     string                 `dynamodbav:"client_id"`
	VehicleID    string                 `dynamodbav:"vehicle_id"`
	Status       string                 `dynamodbav:"status"`
	EntryDate    string                 `dynamodbav:"entry_date"`
	ExitDate     string                 `dynamodbav:"exit_date,omitempty"`
	Items        []serviceOrderLineItem `dynamodbav:"items"`
	Observations string                 `dynamodbav:"observations,omitempty"`
	TotalAmount  float64                `dynamodbav:"total_amount"`
	CreatedAt    string                 `dynamodbav:"created_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: vehicle_id-index (PK: vehicle_id)

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#id <> :seq"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":seq": &types.AttributeValueMemberS{Value: orderSequenceKey},
		},
	})
	if err != nil {
		return nil, err
	}
	orders, err := unmarshalOrders(out.Items)
	if err != nil {
		return nil, err
	}
	sortByCreatedAt(orders, func(o entities.ServiceOrder) time.Time { return o.CreatedAt })
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.ServiceOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersVehicleIDIndex),
		KeyConditionExpression: aws.String("vehicle_id = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: vehicleID},
		},
	})
	if err != nil {
		return nil, err
	}
	orders, err := unmarshalOrders(out.Items)
	if err != nil {
		return nil, err
	}
	sortByCreatedAt(orders, func(o entities.ServiceOrder) time.Time { return o.CreatedAt })
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) NextSequence(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderSequenceKey},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("order sequence attribute missing")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func unmarshalOrders(raw []map[string]types.AttributeValue) ([]entities.ServiceOrder, error) {
	orders := make([]entities.ServiceOrder, 0, len(raw))
	for _, m := range raw {
		var it serviceOrderItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromServiceOrderItem(it))
	}
	return orders, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	lines := make([]serviceOrderLineItem, 0, len(o.Items))
	for _, li := range o.Items {
		lines = append(lines, serviceOrderLineItem{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Type:        string(li.Type),
		})
	}
	return serviceOrderItem{
		ID:           o.ID,
		Number:       o.Number,
		ClientID:     o.ClientID,
		VehicleID:    o.VehicleID,
		Status:       string(o.Status),
		EntryDate:    formatTime(o.EntryDate),
		ExitDate:     formatTimePtr(o.ExitDate),
		Items:        lines,
		Observations: o.Observations,
		TotalAmount:  o.TotalAmount,
		CreatedAt:    formatTime(o.CreatedAt),
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	lines := make([]entities.ServiceOrderItem, 0, len(it.Items))
	for _, li := range it.Items {
		lines = append(lines, entities.ServiceOrderItem{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Type:        entities.ServiceOrderItemType(li.Type),
		})
	}
	return entities.ServiceOrder{
		ID:           it.ID,
		Number:       it.Number,
		ClientID:     it.ClientID,
		VehicleID:    it.VehicleID,
		Status:       entities.ServiceOrderStatus(it.Status),
		EntryDate:    parseTime(it.EntryDate),
		ExitDate:     parseTimePtr(it.ExitDate),
		Items:        lines,
		Observations: it.Observations,
		TotalAmount:  it.TotalAmount,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
