package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "order_submissions"
	ordersChatIDIndex      = "chat_id-index"
	defaultOrdersListLimit = 50
)

type orderSubmissionItem struct {
	ID           string `dynamodbav:"id"`
	ChatID       string `dynamodbav:"chat_id"`
	Channel      string `dynamodbav:"channel"`
	CustomerName string `dynamodbav:"customer_name,omitempty"`
	Status       string `dynamodbav:"status"`
	Attempts     int    `dynamodbav:"attempts"`
	LastError    string `dynamodbav:"last_error,omitempty"`
	RecordsRaw   string `dynamodbav:"records_raw"`
	PaymentRaw   string `dynamodbav:"payment_raw,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// OrderSubmissionDynamoRepository persists OrderSubmission entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: chat_id-index (PK: chat_id)
//
// Records and payment are kept as raw JSON so the backend payload is stored
// exactly as it was sent.
type OrderSubmissionDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IOrderSubmissionRepository = (*OrderSubmissionDynamoRepository)(nil)

// NewOrderSubmissionDynamoRepository uses table, falling back to $ORDERS_TABLE and then
// to the default table name.
func NewOrderSubmissionDynamoRepository(ddb *dynamodb.Client, table string) *OrderSubmissionDynamoRepository {
	if table == "" {
		table = getenvDefault("ORDERS_TABLE", defaultOrdersTableName)
	}
	return newOrderSubmissionDynamoRepository(ddb, table)
}

func newOrderSubmissionDynamoRepository(ddb dynamoAPI, table string) *OrderSubmissionDynamoRepository {
	return &OrderSubmissionDynamoRepository{ddb: ddb, tableName: table}
}

func (r *OrderSubmissionDynamoRepository) Create(ctx context.Context, s entities.OrderSubmission) (entities.OrderSubmission, error) {
	it, err := toOrderSubmissionItem(s)
	if err != nil {
		return entities.OrderSubmission{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.OrderSubmission{}, err
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
		return entities.OrderSubmission{}, err
	}
	return s, nil
}

func (r *OrderSubmissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrderSubmission, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderSubmission{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderSubmission{}, nil
	}

	var it orderSubmissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderSubmission{}, err
	}
	return fromOrderSubmissionItem(it)
}

// ListByChatID returns the newest submissions of a chat first.
func (r *OrderSubmissionDynamoRepository) ListByChatID(ctx context.Context, chatID string) ([]entities.OrderSubmission, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersChatIDIndex),
		KeyConditionExpression: aws.String("chat_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: chatID},
		},
		Limit: aws.Int32(defaultOrdersListLimit),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.OrderSubmission, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderSubmissionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		s, err := fromOrderSubmissionItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

// Update replaces the mutable fields. It returns a zero value when the
// submission does not exist.
func (r *OrderSubmissionDynamoRepository) Update(ctx context.Context, s entities.OrderSubmission) (entities.OrderSubmission, error) {
	it, err := toOrderSubmissionItem(s)
	if err != nil {
		return entities.OrderSubmission{}, err
	}
	if it.UpdatedAt == "" {
		it.UpdatedAt = formatTime(time.Now())
	}

	expr := "SET #status = :status, #attempts = :attempts, #last_error = :last_error, #records_raw = :records_raw, #payment_raw = :payment_raw, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":      &types.AttributeValueMemberS{Value: it.Status},
		":attempts":    &types.AttributeValueMemberN{Value: strconv.Itoa(it.Attempts)},
		":last_error":  &types.AttributeValueMemberS{Value: it.LastError},
		":records_raw": &types.AttributeValueMemberS{Value: it.RecordsRaw},
		":payment_raw": &types.AttributeValueMemberS{Value: it.PaymentRaw},
		":updated_at":  &types.AttributeValueMemberS{Value: it.UpdatedAt},
	}
	names := map[string]string{
		"#status":      "status",
		"#attempts":    "attempts",
		"#last_error":  "last_error",
		"#records_raw": "records_raw",
		"#payment_raw": "payment_raw",
		"#updated_at":  "updated_at",
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: s.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.OrderSubmission{}, nil
		}
		return entities.OrderSubmission{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.OrderSubmission{}, nil
	}
	var updated orderSubmissionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return entities.OrderSubmission{}, err
	}
	return fromOrderSubmissionItem(updated)
}

func toOrderSubmissionItem(s entities.OrderSubmission) (orderSubmissionItem, error) {
	records, err := json.Marshal(s.Records)
	if err != nil {
		return orderSubmissionItem{}, err
	}
	var payment []byte
	if s.Payment != nil {
		if payment, err = json.Marshal(s.Payment); err != nil {
			return orderSubmissionItem{}, err
		}
	}
	return orderSubmissionItem{
		ID:           s.ID,
		ChatID:       s.ChatID,
		Channel:      s.Channel,
		CustomerName: s.CustomerName,
		Status:       string(s.Status),
		Attempts:     s.Attempts,
		LastError:    s.LastError,
		RecordsRaw:   string(records),
		PaymentRaw:   string(payment),
		CreatedAt:    formatTime(s.CreatedAt),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}, nil
}

func fromOrderSubmissionItem(it orderSubmissionItem) (entities.OrderSubmission, error) {
	s := entities.OrderSubmission{
		ID:           it.ID,
		ChatID:       it.ChatID,
		Channel:      it.Channel,
		CustomerName: it.CustomerName,
		Status:       entities.SubmissionStatus(it.Status),
		Attempts:     it.Attempts,
		LastError:    it.LastError,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
	if it.RecordsRaw != "" {
		if err := json.Unmarshal([]byte(it.RecordsRaw), &s.Records); err != nil {
			return entities.OrderSubmission{}, err
		}
	}
	if it.PaymentRaw != "" {
		var p entities.PaymentCharge
		if err := json.Unmarshal([]byte(it.PaymentRaw), &p); err != nil {
			return entities.OrderSubmission{}, err
		}
		s.Payment = &p
	}
	return s, nil
}
