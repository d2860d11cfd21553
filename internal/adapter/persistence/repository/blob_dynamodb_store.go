package repository

import (
	"context"

	"ucraft_estimates/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBlobTableName = "ucraft_estimates"

type blobItem struct {
	Key       string `dynamodbav:"key"`
	Payload   []byte `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoAPI is the part of *dynamodb.Client the blob store uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoBlobStore keeps one item per blob key.
//
// Table requirements:
//   - PK: key (string)
//   - payload (binary), updated_at (string, RFC3339)
type DynamoBlobStore struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBlobStore = (*DynamoBlobStore)(nil)

func NewDynamoBlobStore(ddb DynamoAPI, tableName string) *DynamoBlobStore {
	if tableName == "" {
		tableName = defaultBlobTableName
	}
	return &DynamoBlobStore{ddb: ddb, tableName: tableName}
}

func (s *DynamoBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, interfaces.ErrBlobNotFound
	}

	var it blobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return it.Payload, nil
}

func (s *DynamoBlobStore) Put(ctx context.Context, key string, data []byte) error {
	av, err := attributevalue.MarshalMap(blobItem{Key: key, Payload: data, UpdatedAt: nowRFC3339()})
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
