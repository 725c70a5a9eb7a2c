package nosql

import (
	"context"
	"fmt"

	"go-medical-appointment/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"
)

// NewDynamoDBClient builds a client from the default AWS credential chain.
// Endpoint points the client at DynamoDB Local when set.
func NewDynamoDBClient(ctx context.Context, cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	logrus.WithFields(logrus.Fields{
		"table":    cfg.Table,
		"region":   cfg.Region,
		"endpoint": cfg.Endpoint,
	}).Info("DynamoDB client configured")

	return client, nil
}
