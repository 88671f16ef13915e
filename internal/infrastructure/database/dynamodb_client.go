package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"villa_pricing/internal/infrastructure/config"
)

// ConnectDynamoDB creates a DynamoDB client from the storage.dynamodb section.
//
// With an endpoint set (e.g. http://dynamodb:8000 for DynamoDB Local) the
// static credentials default to "local"; otherwise the SDK's default chain is
// used unless keys are given explicitly.
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, cfg config.DynamoDBConfig) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(defaultString(cfg.Region, "us-east-1")),
	}

	accessKey, secretKey := cfg.AccessKeyID, cfg.SecretAccessKey
	if cfg.Endpoint != "" {
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		accessKey = defaultString(accessKey, "local")
		secretKey = defaultString(secretKey, "local")
	}
	if accessKey != "" && secretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

func defaultString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
