package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"orcamento_bot/internal/adapter/chat"
	"orcamento_bot/internal/adapter/chat/telegram"
	"orcamento_bot/internal/adapter/http/handlers"
	"orcamento_bot/internal/adapter/http/routes"
	"orcamento_bot/internal/config"
	"orcamento_bot/internal/infrastructure/backend"
	"orcamento_bot/internal/infrastructure/events"
	"orcamento_bot/internal/infrastructure/metrics"
	"orcamento_bot/internal/infrastructure/payments"
	"orcamento_bot/internal/infrastructure/postal"
	"orcamento_bot/internal/usecase"
	"orcamento_bot/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/pflag"
)

// @title           Orçamento Bot Admin API
// @version         1.0
// @description     Operator endpoints and webhook intake for the ordering chatbot.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.

const shutdownTimeout = 15 * time.Second

func main() {
	envFile := pflag.String("env-file", "", "extra .env file merged into the environment")
	httpAddr := pflag.String("http-addr", "", "admin HTTP listen address (overrides HTTP_ADDR)")
	transport := pflag.String("transport", "", "chat transport: telegram or webhook (overrides CHAT_TRANSPORT)")
	pflag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		log.Fatalf("[main] load env file %s: %v", *envFile, err)
	}
	if *transport != "" {
		_ = os.Setenv("CHAT_TRANSPORT", *transport)
	}
	if *httpAddr != "" {
		_ = os.Setenv("HTTP_ADDR", *httpAddr)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("[main] %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	reg := metrics.NewRegistry()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	var (
		messenger interfaces.IMessenger = chat.LogMessenger{}
		tg        *telegram.Transport
	)
	if cfg.TelegramToken != "" {
		if tg, err = telegram.New(cfg.TelegramToken); err != nil {
			return err
		}
		messenger = tg
	}

	backendClient := backend.NewClient(backend.Config{
		BaseURL:          cfg.Backend.BaseURL,
		CatalogEndpoints: cfg.Backend.CatalogEndpoints,
		Timeout:          cfg.Backend.OrderTimeout,
	})

	var publisher interfaces.IOrderEventPublisher
	if cfg.Kafka.Brokers != "" {
		kp := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kp.Close()
		publisher = kp
	}

	var pix usecase.IPixChargeUseCase
	if cfg.Payments.Mock || cfg.Payments.AccessToken != "" {
		gw, err := payments.NewMercadoPagoGateway(payments.MercadoPagoConfig{
			AccessToken: cfg.Payments.AccessToken,
			Mock:        cfg.Payments.Mock,
		})
		if err != nil {
			log.Printf("[main] pix charges disabled: %v", err)
		} else {
			pix = usecase.NewPixChargeUseCase(gw, cfg.Payments.PayerEmail)
		}
	}

	catalog := usecase.NewCatalogUseCase(backendClient, reg)
	if n, err := catalog.Refresh(ctx); err != nil {
		log.Printf("[main] initial catalog refresh failed entries=%d err=%v", n, err)
	}
	go catalog.RunRefreshLoop(ctx, cfg.Backend.RefreshInterval)

	address := usecase.NewAddressUseCase(postal.NewViaCEPClient(cfg.Postal.BaseURL, cfg.Postal.Timeout), cfg.Postal.Timeout, reg)
	orders := usecase.NewOrderSubmissionUseCase(backendClient, st.orders, messenger, publisher, pix, reg, usecase.OrderSubmissionConfig{
		OpsChatID: cfg.Ops.OrdersChatID,
		Timeout:   cfg.Backend.OrderTimeout,
	})
	sessions := usecase.NewSessionUseCase(st.sessions, catalog, address, orders, messenger, reg, usecase.SessionConfig{
		Hours: usecase.BusinessHours{
			OpenHour:  cfg.Hours.Open,
			CloseHour: cfg.Hours.Close,
			Location:  cfg.Hours.Location,
		},
		CatalogImages:   cfg.CatalogImages,
		SiteURL:         cfg.SiteURL,
		QuestionsChatID: cfg.Ops.QuestionsChatID,
	})
	handoff := usecase.NewHandoffUseCase(st.handoffs, st.sessions, messenger, reg, usecase.HandoffConfig{
		CommandChatID: cfg.Ops.CommandChatID,
		Operators:     cfg.Ops.Operators,
	})
	imported := usecase.NewImportedOrderUseCase(orders, address, messenger)
	conversation := usecase.NewConversationUseCase(handoff, imported, sessions, reg,
		cfg.Ops.CommandChatID, cfg.Ops.OrdersChatID, cfg.Ops.QuestionsChatID)

	dispatcher := chat.NewDispatcher(conversation, chat.DispatcherConfig{
		QueueSize:   cfg.Dispatcher.QueueSize,
		IdleTimeout: cfg.Dispatcher.IdleTimeout,
	})
	handoff.SetQueue(dispatcher)

	h := routes.Handlers{
		Handoff: handlers.NewHandoffHandler(handoff),
		Session: handlers.NewSessionHandler(sessions, dispatcher),
		Catalog: handlers.NewCatalogHandler(catalog),
		Order:   handlers.NewOrderHandler(orders),
	}
	if cfg.Transport == config.TransportWebhook {
		h.Message = handlers.NewMessageHandler(dispatcher)
	}
	srv := routes.NewServer(cfg.HTTP.Addr, routes.NewRouter(h, routes.Options{
		AdminToken: cfg.HTTP.AdminToken,
		Metrics:    reg.Handler(),
	}))

	errCh := make(chan error, 2)
	go func() {
		log.Printf("[main] http listening addr=%s transport=%s", cfg.HTTP.Addr, cfg.Transport)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	if cfg.Transport == config.TransportTelegram {
		go func() {
			if err := tg.Run(ctx, dispatcher); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		log.Printf("[main] shutting down")
	case err = <-errCh:
		log.Printf("[main] fatal component error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		log.Printf("[main] http shutdown: %v", serr)
	}
	if derr := dispatcher.Close(shutdownCtx); derr != nil {
		log.Printf("[main] dispatcher drain: %v", derr)
	}
	return err
}
