package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a single-table in-memory stand-in for the DynamoDB calls the
// repositories make. It understands attribute_(not_)exists conditions and
// plain "SET #a = :a, ..." updates.
type fakeDynamo struct {
	mu    sync.Mutex
	key   string
	items map[string]map[string]types.AttributeValue
	err   error
}

var _ dynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo(key string) *fakeDynamo {
	return &fakeDynamo{key: key, items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) keyOf(item map[string]types.AttributeValue) string {
	if s, ok := item[f.key].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("conditional check failed")}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	k := f.keyOf(in.Item)
	if in.ConditionExpression != nil && strings.HasPrefix(*in.ConditionExpression, "attribute_not_exists") {
		if _, ok := f.items[k]; ok {
			return nil, conditionFailed()
		}
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[f.keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	k := f.keyOf(in.Key)
	old := f.items[k]
	delete(f.items, k)
	out := &dynamodb.DeleteItemOutput{}
	if in.ReturnValues == types.ReturnValueAllOld {
		out.Attributes = old
	}
	return out, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	k := f.keyOf(in.Key)
	item, ok := f.items[k]
	if !ok {
		return nil, conditionFailed()
	}
	expr := strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET ")
	for _, assign := range strings.Split(expr, ",") {
		parts := strings.SplitN(assign, "=", 2)
		if len(parts) != 2 {
			return nil, errors.New("fake dynamo: unsupported update expression")
		}
		name := in.ExpressionAttributeNames[strings.TrimSpace(parts[0])]
		item[name] = in.ExpressionAttributeValues[strings.TrimSpace(parts[1])]
	}
	return &dynamodb.UpdateItemOutput{Attributes: item}, nil
}

// Query matches every ":x" value against the attribute of the same name
// in "attr = :x".
func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	parts := strings.SplitN(aws.ToString(in.KeyConditionExpression), "=", 2)
	attr := strings.TrimSpace(parts[0])
	want := in.ExpressionAttributeValues[strings.TrimSpace(parts[1])].(*types.AttributeValueMemberS).Value
	var out []map[string]types.AttributeValue
	for _, item := range f.items {
		if s, ok := item[attr].(*types.AttributeValueMemberS); ok && s.Value == want {
			out = append(out, item)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]map[string]types.AttributeValue, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return &dynamodb.ScanOutput{Items: out}, nil
}
