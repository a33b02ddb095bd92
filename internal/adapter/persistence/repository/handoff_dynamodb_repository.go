package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"orcamento_bot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultHandoffsTableName = "chat_handoffs"

type handoffItem struct {
	ChatID    string `dynamodbav:"chat_id"`
	StartedAt string `dynamodbav:"started_at"`
}

// HandoffDynamoRepository keeps the set of chats handed off to an operator.
//
// Table requirements:
//   - PK: chat_id (string)
type HandoffDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IHandoffRepository = (*HandoffDynamoRepository)(nil)

// NewHandoffDynamoRepository uses table, falling back to $HANDOFFS_TABLE and then
// to the default table name.
func NewHandoffDynamoRepository(ddb *dynamodb.Client, table string) *HandoffDynamoRepository {
	if table == "" {
		table = getenvDefault("HANDOFFS_TABLE", defaultHandoffsTableName)
	}
	return newHandoffDynamoRepository(ddb, table)
}

func newHandoffDynamoRepository(ddb dynamoAPI, table string) *HandoffDynamoRepository {
	return &HandoffDynamoRepository{ddb: ddb, tableName: table}
}

func (r *HandoffDynamoRepository) Add(ctx context.Context, chatID string) (bool, error) {
	av, err := attributevalue.MarshalMap(handoffItem{ChatID: chatID, StartedAt: formatTime(time.Now())})
	if err != nil {
		return false, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#chat_id)"),
		ExpressionAttributeNames: map[string]string{
			"#chat_id": "chat_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *HandoffDynamoRepository) Remove(ctx context.Context, chatID string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"chat_id": &types.AttributeValueMemberS{Value: chatID},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *HandoffDynamoRepository) Contains(ctx context.Context, chatID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"chat_id": &types.AttributeValueMemberS{Value: chatID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *HandoffDynamoRepository) List(ctx context.Context) ([]string, error) {
	var (
		ids   []string
		start map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: start,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it handoffItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			ids = append(ids, it.ChatID)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		start = out.LastEvaluatedKey
	}
	sort.Strings(ids)
	return ids, nil
}
