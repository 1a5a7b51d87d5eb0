package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"collabhub/internal/adapter/cache"
	"collabhub/internal/adapter/events"
	httpadapter "collabhub/internal/adapter/http"
	"collabhub/internal/adapter/memory"
	"collabhub/internal/adapter/postgres"
	"collabhub/internal/adapter/usecase"
	"collabhub/internal/config"
	"collabhub/internal/config/configs"
	"collabhub/internal/core/port"
	"collabhub/internal/db"
)

// stores bundles the outbound store ports for the selected driver.
type stores struct {
	campaigns    port.CampaignRepository
	applications port.ApplicationRepository
	influencers  port.InfluencerRepository
	tx           port.Transactor
	health       func(ctx context.Context) error
}

// main is the entry point of the collabhub service. It loads configuration,
// wires the stores and collaborators for the configured drivers, then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, closeStores, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("store setup error", slog.Any("error", err))
		return
	}
	defer closeStores()

	if cfg.Store.Seed {
		if err = db.Seed(ctx, st.influencers, st.campaigns); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data seeded")
	}

	notifier, closeNotifier, err := openNotifier(cfg, logger)
	if err != nil {
		logger.Error("notifier setup error", slog.Any("error", err))
		return
	}
	defer closeNotifier()

	var gaps port.DeliveryGapRecorder
	if cfg.Redis.Addr != "" {
		client, err := cache.Connect(ctx, cfg.Redis.Addr)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer client.Close()
		gaps = cache.NewRedisGapRecorder(client, cfg.Redis.GapKey)
	}

	opts := usecase.Options{
		StoreTimeout:   cfg.Engine.StoreTimeout,
		NotifyTimeout:  cfg.Engine.NotifyTimeout,
		NotifyAttempts: cfg.Engine.NotifyAttempts,
		NotifyBackoff:  cfg.Engine.NotifyBackoff,
	}
	svc := httpadapter.Services{
		Campaigns: usecase.NewCampaignUseCase(st.campaigns, logger, opts),
		Matching:  usecase.NewMatchingUseCase(st.campaigns, st.applications, st.tx, notifier, gaps, logger, opts),
		Discovery: usecase.NewDiscoveryUseCase(st.influencers, st.campaigns, opts),
		Health:    st.health,
	}
	auth := httpadapter.NewAuthenticator(cfg.Auth.Secret, cfg.Auth.Issuer)
	handler := httpadapter.NewHandler(svc, auth, logger, cfg.Engine.TransientRetries)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("store", cfg.Store.Driver),
			slog.String("notifier", cfg.Notify.Driver))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			return
		}
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

func openStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (stores, func(), error) {
	if cfg.Store.Driver == configs.StoreDriverMemory {
		store := memory.NewStore()
		logger.Warn("using in-memory store; data is lost on exit")
		return stores{
			campaigns:    store,
			applications: store,
			influencers:  store,
			tx:           store,
		}, func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		from, to, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return stores{}, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("schema ready",
			slog.Uint64("from_version", uint64(from)),
			slog.Uint64("version", uint64(to)))
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return stores{}, nil, fmt.Errorf("database connection: %w", err)
	}
	return stores{
		campaigns:    postgres.NewCampaignRepository(pool),
		applications: postgres.NewApplicationRepository(pool),
		influencers:  postgres.NewInfluencerRepository(pool),
		tx:           postgres.NewTransactor(pool),
		health:       pool.Ping,
	}, pool.Close, nil
}

func openNotifier(cfg config.Config, logger *slog.Logger) (port.Notifier, func(), error) {
	if cfg.Notify.Driver != configs.NotifyDriverKafka {
		return events.NewLogNotifier(logger), func() {}, nil
	}
	kn, err := events.NewKafkaNotifier(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		return nil, nil, err
	}
	return kn, closeLogged(kn, logger, "kafka writer"), nil
}

func closeLogged(c io.Closer, logger *slog.Logger, name string) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Error("close error", slog.String("component", name), slog.Any("error", err))
		}
	}
}
