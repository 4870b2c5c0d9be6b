package repository

import (
	"context"
	"errors"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInventoryTableName = "inventory_items"

type inventoryItemRecord struct {
	ID           string  `dynamodbav:"id"`
	Code         string  `dynamodbav:"code"`
	Name         string  `dynamodbav:"name"`
	Description  string  `dynamodbav:"description,omitempty"`
	Category     string  `dynamodbav:"category"`
	CostPrice    float64 `dynamodbav:"cost_price"`
	SalePrice    float64 `dynamodbav:"sale_price"`
	Stock        int     `dynamodbav:"stock"`
	MinStock     int     `dynamodbav:"min_stock"`
	SupplierID   string  `dynamodbav:"supplier_id,omitempty"`
	LastPurchase string  `dynamodbav:"last_purchase,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at"`
}

// InventoryDynamoRepository persists InventoryItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type InventoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInventoryRepository = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb *dynamodb.Client) *InventoryDynamoRepository {
	return &InventoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVENTORY_TABLE", defaultInventoryTableName),
	}
}

func (r *InventoryDynamoRepository) List(ctx context.Context) ([]entities.InventoryItem, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.InventoryItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it inventoryItemRecord
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInventoryItemRecord(it))
	}
	sortByCreatedAt(items, func(i entities.InventoryItem) time.Time { return i.CreatedAt })
	return items, nil
}

func (r *InventoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.InventoryItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.InventoryItem{}, nil
	}

	var it inventoryItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryItemRecord(it), nil
}

func (r *InventoryDynamoRepository) Create(ctx context.Context, i entities.InventoryItem) (entities.InventoryItem, error) {
	av, err := attributevalue.MarshalMap(toInventoryItemRecord(i))
	if err != nil {
		return entities.InventoryItem{}, err
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
		return entities.InventoryItem{}, err
	}
	return i, nil
}

func (r *InventoryDynamoRepository) Update(ctx context.Context, i entities.InventoryItem) (entities.InventoryItem, error) {
	av, err := attributevalue.MarshalMap(toInventoryItemRecord(i))
	if err != nil {
		return entities.InventoryItem{}, err
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
			return entities.InventoryItem{}, nil
		}
		return entities.InventoryItem{}, err
	}
	return i, nil
}

func (r *InventoryDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toInventoryItemRecord(i entities.InventoryItem) inventoryItemRecord {
	return inventoryItemRecord{
		ID:           i.ID,
		Code:         i.Code,
		Name:         i.Name,
		Description:  i.Description,
		Category:     i.Category,
		CostPrice:    i.CostPrice,
		SalePrice:    i.SalePrice,
		Stock:        i.Stock,
		MinStock:     i.MinStock,
		SupplierID:   i.SupplierID,
		LastPurchase: formatTimePtr(i.LastPurchase),
		CreatedAt:    formatTime(i.CreatedAt),
	}
}

func fromInventoryItemRecord(it inventoryItemRecord) entities.InventoryItem {
	return entities.InventoryItem{
		ID:           it.ID,
		Code:         it.Code,
		Name:         it.Name,
		Description:  it.Description,
		Category:     it.Category,
		CostPrice:    it.CostPrice,
		SalePrice:    it.SalePrice,
		Stock:        it.Stock,
		MinStock:     it.MinStock,
		SupplierID:   it.SupplierID,
		LastPurchase: parseTimePtr(it.LastPurchase),
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
