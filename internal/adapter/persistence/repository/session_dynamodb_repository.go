package repository

import (
	"context"
	"encoding/json"
	"time"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "chat_sessions"

type sessionItem struct {
	ChatID    string `dynamodbav:"chat_id"`
	Stage     string `dynamodbav:"stage"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SessionDynamoRepository stores one session per chat.
//
// Table requirements:
//   - PK: chat_id (string)
//
// The session is kept as a JSON payload; stage and updated_at are copied
// out so operators can scan the table.
type SessionDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client, table string) *SessionDynamoRepository {
	if table == "" {
		table = getenvDefault("SESSIONS_TABLE", defaultSessionsTableName)
	}
	return newSessionDynamoRepository(ddb, table)
}

func newSessionDynamoRepository(ddb dynamoAPI, table string) *SessionDynamoRepository {
	return &SessionDynamoRepository{ddb: ddb, tableName: table}
}

func (r *SessionDynamoRepository) Get(ctx context.Context, chatID string) (entities.Session, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"chat_id": &types.AttributeValueMemberS{Value: chatID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, false, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, false, err
	}
	var s entities.Session
	if err := json.Unmarshal([]byte(it.Payload), &s); err != nil {
		return entities.Session{}, false, err
	}
	s.ChatID = it.ChatID
	return s, true, nil
}

func (r *SessionDynamoRepository) Save(ctx context.Context, s entities.Session) error {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(sessionItem{
		ChatID:    s.ChatID,
		Stage:     string(s.Stage),
		Payload:   string(payload),
		UpdatedAt: formatTime(s.UpdatedAt),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SessionDynamoRepository) Delete(ctx context.Context, chatID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"chat_id": &types.AttributeValueMemberS{Value: chatID},
		},
	})
	return err
}
