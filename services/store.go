package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DocumentStore is the slice of DynamoDB operations the repositories
// consume. *DynamoService satisfies it; tests run against an in-memory
// implementation.
type DocumentStore interface {
	PutItem(ctx context.Context, tableName string, item interface{}) error
	GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)
	DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error
	QueryItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error)
	CountItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue) (int, error)
	ScanItems(ctx context.Context, tableName string) ([]map[string]types.AttributeValue, error)
}
