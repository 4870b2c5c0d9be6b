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

const (
	defaultTransactionsTableName = "transactions"
	transactionsTypeIndex        = "type-index"
)

type transactionItem struct {
	ID             string  `dynamodbav:"id"`
	Description    string  `dynamodbav:"description"`
	Type           string  `dynamodbav:"type"`
	Amount         float64 `dynamodbav:"amount"`
	Date           string  `dynamodbav:"date"`
	Category       string  `dynamodbav:"category"`
	PaymentMethod  string  `dynamodbav:"payment_method"`
	Status         string  `dynamodbav:"status"`
	RelatedOrderID string  `dynamodbav:"related_order_id,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: type-index (PK: type)

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) List(ctx context.Context) ([]entities.Transaction, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	txs, err := unmarshalTransactions(out.Items)
	if err != nil {
		return nil, err
	}
	sortByCreatedAt(txs, func(t entities.Transaction) time.Time { return t.CreatedAt })
	return txs, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListByType(ctx context.Context, t entities.TransactionType) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsTypeIndex),
		KeyConditionExpression: aws.String("#type = :t"),
		ExpressionAttributeNames: map[string]string{
			"#type": "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberS{Value: string(t)},
		},
	})
	if err != nil {
		return nil, err
	}
	txs, err := unmarshalTransactions(out.Items)
	if err != nil {
		return nil, err
	}
	sortByCreatedAt(txs, func(tx entities.Transaction) time.Time { return tx.CreatedAt })
	return txs, nil
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(tx))
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (r *TransactionDynamoRepository) Update(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(tx))
	if err != nil {
		return entities.Transaction{}, err
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
			return entities.Transaction{}, nil
		}
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (r *TransactionDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func unmarshalTransactions(raw []map[string]types.AttributeValue) ([]entities.Transaction, error) {
	txs := make([]entities.Transaction, 0, len(raw))
	for _, m := range raw {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		txs = append(txs, fromTransactionItem(it))
	}
	return txs, nil
}

func toTransactionItem(tx entities.Transaction) transactionItem {
	return transactionItem{
		ID:             tx.ID,
		Description:    tx.Description,
		Type:           string(tx.Type),
		Amount:         tx.Amount,
		Date:           formatTime(tx.Date),
		Category:       tx.Category,
		PaymentMethod:  string(tx.PaymentMethod),
		Status:         string(tx.Status),
		RelatedOrderID: tx.RelatedOrderID,
		CreatedAt:      formatTime(tx.CreatedAt),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	return entities.Transaction{
		ID:             it.ID,
		Description:    it.Description,
		Type:           entities.TransactionType(it.Type),
		Amount:         it.Amount,
		Date:           parseTime(it.Date),
		Category:       it.Category,
		PaymentMethod:  entities.PaymentMethod(it.PaymentMethod),
		Status:         entities.TransactionStatus(it.Status),
		RelatedOrderID: it.RelatedOrderID,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
