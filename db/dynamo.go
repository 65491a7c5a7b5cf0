package db

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/midimml/model"
	"github.com/pkg/errors"
)

const (
	keyAttribute        = "PK"
	conversionAttribute = "Conversion"
)

// DynamoStore keeps conversions in a DynamoDB table keyed by "PK", with the
// conversion stored as a JSON string.
type DynamoStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamoStore(endpoint, region, table string) (*DynamoStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating dynamodb session")
	}
	return NewDynamoStoreWithClient(dynamodb.New(sess), table), nil
}

func NewDynamoStoreWithClient(client dynamodbiface.DynamoDBAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

func (s *DynamoStore) Put(ctx context.Context, c model.Conversion) (string, error) {
	c.ID = newID()
	data, err := json.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, "encoding conversion")
	}

	_, err = s.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]*dynamodb.AttributeValue{
			keyAttribute:        {S: aws.String(c.ID)},
			conversionAttribute: {S: aws.String(string(data))},
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "putting conversion")
	}
	return c.ID, nil
}

func (s *DynamoStore) Get(ctx context.Context, id string) (model.Conversion, error) {
	var c model.Conversion
	out, err := s.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			keyAttribute: {S: aws.String(id)},
		},
	})
	if err != nil {
		return c, errors.Wrap(err, "getting conversion")
	}

	attr, ok := out.Item[conversionAttribute]
	if !ok || attr.S == nil {
		return c, errors.Wrap(ErrNotFound, id)
	}
	if err := json.Unmarshal([]byte(*attr.S), &c); err != nil {
		return c, errors.Wrap(err, "decoding conversion")
	}
	return c, nil
}
