package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoConfig locates the DynamoDB used by the session, handoff and order
// stores. Endpoint is set for DynamoDB Local (e.g. http://dynamodb:8000).
type DynamoConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ConnectDynamoDB builds a client from cfg. Static credentials are used when
// an access key is configured; otherwise the default AWS chain applies.
func ConnectDynamoDB(ctx context.Context, cfg DynamoConfig) (*dynamodb.Client, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	log.Printf("[database][dynamodb] client ready region=%s endpoint=%s", awsCfg.Region, endpoint)
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func loadAWSConfig(ctx context.Context, cfg DynamoConfig) (aws.Config, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}

	access, secret := cfg.AccessKeyID, cfg.SecretAccessKey
	if access == "" && cfg.Endpoint != "" {
		// DynamoDB Local ignores credentials but the SDK still signs requests.
		access, secret = "local", "local"
	}
	if access != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(access, secret, ""),
		))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}
