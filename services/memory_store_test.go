package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"moviematch_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var errStoreUnavailable = errors.New("store unavailable")

// tableKeyAttributes maps each table to its partition key attribute, the
// way the real tables are provisioned.
var tableKeyAttributes = map[string]string{
	models.FavoritesTable: "favoriteId",
	models.FollowsTable:   "followId",
	models.UsersTable:     "userId",
}

// memoryStore is an in-memory DocumentStore used by the service tests.
// Queries iterate items in key order, so results are deterministic the way
// a keyed DynamoDB query is.
type memoryStore struct {
	mu         sync.Mutex
	tables     map[string]map[string]map[string]types.AttributeValue
	failReads  bool
	failWrites bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{tables: make(map[string]map[string]map[string]types.AttributeValue)}
}

func (m *memoryStore) setFailReads(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failReads = fail
}

func (m *memoryStore) setFailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = fail
}

func (m *memoryStore) PutItem(_ context.Context, tableName string, item interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errStoreUnavailable
	}

	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	keyValue := attrString(marshaled[tableKeyAttributes[tableName]])
	if m.tables[tableName] == nil {
		m.tables[tableName] = make(map[string]map[string]types.AttributeValue)
	}
	m.tables[tableName][keyValue] = marshaled
	return nil
}

func (m *memoryStore) GetItem(_ context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failReads {
		return nil, errStoreUnavailable
	}

	keyValue := attrString(key[tableKeyAttributes[tableName]])
	item, ok := m.tables[tableName][keyValue]
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (m *memoryStore) DeleteItem(_ context.Context, tableName string, key map[string]types.AttributeValue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errStoreUnavailable
	}

	delete(m.tables[tableName], attrString(key[tableKeyAttributes[tableName]]))
	return nil
}

func (m *memoryStore) QueryItemsWithIndex(_ context.Context, tableName, _, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, _ map[string]string, _ int32) ([]map[string]types.AttributeValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failReads {
		return nil, errStoreUnavailable
	}

	// The services only issue single-equality conditions: "field = :value".
	parts := strings.SplitN(keyConditionExpression, " = ", 2)
	field, placeholder := parts[0], parts[1]
	want := expressionAttributeValues[placeholder]

	var items []map[string]types.AttributeValue
	for _, keyValue := range m.sortedKeys(tableName) {
		item := m.tables[tableName][keyValue]
		if attrEqual(item[field], want) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *memoryStore) CountItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue) (int, error) {
	items, err := m.QueryItemsWithIndex(ctx, tableName, indexName, keyConditionExpression, expressionAttributeValues, nil, 0)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (m *memoryStore) ScanItems(_ context.Context, tableName string) ([]map[string]types.AttributeValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failReads {
		return nil, errStoreUnavailable
	}

	var items []map[string]types.AttributeValue
	for _, keyValue := range m.sortedKeys(tableName) {
		items = append(items, m.tables[tableName][keyValue])
	}
	return items, nil
}

func (m *memoryStore) sortedKeys(tableName string) []string {
	keys := make([]string, 0, len(m.tables[tableName]))
	for key := range m.tables[tableName] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func attrString(attr types.AttributeValue) string {
	if v, ok := attr.(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func attrEqual(a, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		return ok && av.Value == bv.Value
	default:
		return false
	}
}
