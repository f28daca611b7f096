// internal/common/database/dynamodb.go
package database

import (
	"context"
	"fmt"

	"admissions-skill/internal/common/config"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBClient wraps the DynamoDB client
type DynamoDBClient struct {
	Client    *dynamodb.Client
	TableName string
}

// NewDynamoDB creates a new DynamoDB client for the university table using
// the default credential chain.
func NewDynamoDB(ctx context.Context, cfg config.DynamoDBConfig) (*DynamoDBClient, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &DynamoDBClient{
		Client:    dynamodb.NewFromConfig(awsCfg),
		TableName: cfg.TableName,
	}, nil
}

// Ping tests the DynamoDB connection by describing the university table.
func (c *DynamoDBClient) Ping(ctx context.Context) error {
	_, err := c.Client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: awssdk.String(c.TableName),
	})
	if err != nil {
		return fmt.Errorf("dynamodb describe table failed: %w", err)
	}
	return nil
}
