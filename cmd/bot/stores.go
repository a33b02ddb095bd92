package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"orcamento_bot/internal/adapter/persistence/repository"
	"orcamento_bot/internal/config"
	"orcamento_bot/internal/infrastructure/database"
	"orcamento_bot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type stores struct {
	sessions interfaces.ISessionRepository
	handoffs interfaces.IHandoffRepository
	orders   interfaces.IOrderSubmissionRepository
	closers  []io.Closer
}

func (s *stores) Close() {
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			log.Printf("[main] close store: %v", err)
		}
	}
}

func openStores(ctx context.Context, cfg config.Config) (*stores, error) {
	st := &stores{}

	var ddb *dynamodb.Client
	if cfg.UsesDynamoDB() {
		var err error
		ddb, err = database.ConnectDynamoDB(ctx, database.DynamoConfig{
			Region:          cfg.Storage.AWSRegion,
			Endpoint:        cfg.Storage.DynamoEndpoint,
			AccessKeyID:     cfg.Storage.AWSAccessKeyID,
			SecretAccessKey: cfg.Storage.AWSSecretKey,
		})
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Storage.Sessions {
	case config.StoreDynamoDB:
		st.sessions = repository.NewSessionDynamoRepository(ddb, cfg.Storage.SessionsTable)
	case config.StorePebble:
		p, err := repository.OpenSessionPebbleRepository(cfg.Storage.PebbleDir, cfg.Storage.PebbleSync)
		if err != nil {
			return nil, fmt.Errorf("open session store: %w", err)
		}
		st.sessions = p
		st.closers = append(st.closers, p)
	default:
		st.sessions = repository.NewMemorySessionRepository()
	}

	switch cfg.Storage.Handoffs {
	case config.StoreDynamoDB:
		st.handoffs = repository.NewHandoffDynamoRepository(ddb, cfg.Storage.HandoffsTable)
	default:
		st.handoffs = repository.NewMemoryHandoffRepository()
	}

	switch cfg.Storage.Orders {
	case config.StoreDynamoDB:
		st.orders = repository.NewOrderSubmissionDynamoRepository(ddb, cfg.Storage.OrdersTable)
	default:
		st.orders = repository.NewMemoryOrderSubmissionRepository()
	}

	log.Printf("[main] stores sessions=%s handoffs=%s orders=%s", cfg.Storage.Sessions, cfg.Storage.Handoffs, cfg.Storage.Orders)
	return st, nil
}
