package database

import (
	"context"
	"testing"
)

func TestLoadAWSConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults region", func(t *testing.T) {
		cfg, err := loadAWSConfig(ctx, DynamoConfig{Endpoint: "http://localhost:8000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Region != "us-east-1" {
			t.Fatalf("expected us-east-1, got %s", cfg.Region)
		}
		creds, err := cfg.Credentials.Retrieve(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if creds.AccessKeyID != "local" {
			t.Fatalf("expected local credentials for endpoint, got %s", creds.AccessKeyID)
		}
	})

	t.Run("static credentials", func(t *testing.T) {
		cfg, err := loadAWSConfig(ctx, DynamoConfig{Region: "sa-east-1", AccessKeyID: "AKIA", SecretAccessKey: "s"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		creds, _ := cfg.Credentials.Retrieve(ctx)
		if cfg.Region != "sa-east-1" || creds.AccessKeyID != "AKIA" {
			t.Fatalf("unexpected config region=%s key=%s", cfg.Region, creds.AccessKeyID)
		}
	})

	t.Run("client with endpoint", func(t *testing.T) {
		client, err := ConnectDynamoDB(ctx, DynamoConfig{Endpoint: "http://localhost:8000"})
		if err != nil || client == nil {
			t.Fatalf("expected client, got err=%v", err)
		}
		if got := client.Options().BaseEndpoint; got == nil || *got != "http://localhost:8000" {
			t.Fatalf("unexpected base endpoint: %v", got)
		}
	})
}
