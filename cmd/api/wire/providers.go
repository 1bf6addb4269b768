package wire

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"insurance-server/cmd/config"
	"insurance-server/internal/infra/async"
	"insurance-server/internal/infra/cache"
	"insurance-server/internal/infra/httpserver"
	"insurance-server/internal/infra/node"
	"insurance-server/internal/infra/pubsub"
	"insurance-server/internal/infra/sql"
	"insurance-server/internal/logger"
	sharedHTTPAPI "insurance-server/internal/shared_kernel/httpapi"
	"insurance-server/internal/underwriting/httpapi"
	"insurance-server/internal/underwriting/usecases"
)

// Application is everything main starts and stops.
type Application struct {
	Server   *httpserver.StandardServer
	Workers  []async.Worker
	Database sql.Database
}

func provideDatabase(appConfig config.AppConfig) (sql.ORM, error) {
	if appConfig.IsLocal() || appConfig.Postgresql.DSN == "" {
		slog.Info("using in-memory database")
		return sql.NewMemoryORM()
	}

	orm, err := sql.NewPostgreORM(appConfig.Postgresql.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening postgres orm: %w", err)
	}
	return orm, nil
}

func provideHealthDatabase(appConfig config.AppConfig) (sql.Database, error) {
	if appConfig.IsLocal() || appConfig.Postgresql.URL == "" {
		return sql.NoopDatabase{}, nil
	}

	db := sql.NewPostgreDatabase(appConfig.Postgresql.URL)
	if err := db.Open(context.Background()); err != nil {
		return nil, fmt.Errorf("opening postgres pool: %w", err)
	}
	return db, nil
}

func provideHealthChecker(db sql.Database) httpserver.HealthChecker {
	return db
}

func providePubSubFactory(appConfig config.AppConfig) *pubsub.Factory {
	brokers := appConfig.Kafka.Brokers
	if appConfig.IsLocal() {
		brokers = nil
	}

	return pubsub.NewFactory(pubsub.FactoryOptions{
		Environment:       appConfig.General.Environment,
		KafkaBrokers:      brokers,
		ConsumerGroup:     fmt.Sprintf("%s-%s", appConfig.Kafka.Group, node.GetNodeInfo().ID),
		SchemaRegistryURL: appConfig.Kafka.SchemaRegistry,
	})
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideConsumerFactory(factory *pubsub.Factory) pubsub.ConsumerFactory {
	return factory.GetConsumerFactory()
}

// provideRiskTypeCache shares risk types through Redis when an address is configured and
// keeps them in process otherwise.
func provideRiskTypeCache(appConfig config.AppConfig) (cache.Cache, error) {
	if appConfig.Redis.Addr == "" {
		return cache.New(cache.DefaultConfig())
	}

	redisConfig := cache.DefaultRedisConfig()
	redisConfig.Addr = appConfig.Redis.Addr
	redisConfig.Password = appConfig.Redis.Password
	redisConfig.DB = appConfig.Redis.DB
	return cache.NewRedisCache(redisConfig)
}

func provideCacheTTL(appConfig config.AppConfig) time.Duration {
	return appConfig.Cache.TTL
}

func provideWorkers(riskTypeCacheInvalidation *usecases.RiskTypeCacheInvalidationWorker) []async.Worker {
	return []async.Worker{riskTypeCacheInvalidation}
}

func provideAccessLogger(appConfig config.AppConfig) (logger.Logger, error) {
	return logger.NewLogger(appConfig.General.LogLevel)
}

func provideServer(
	appConfig config.AppConfig,
	accessLog logger.Logger,
	health httpserver.HealthChecker,
	users *sharedHTTPAPI.UserController,
	riskTypes *httpapi.RiskTypeController,
	accounts *httpapi.AccountController,
) *httpserver.StandardServer {
	return httpserver.NewServer(
		httpserver.ServerOptions{
			Address:        appConfig.HTTP.Address,
			AllowedOrigins: appConfig.HTTP.AllowedOrigins,
			AccessLog:      accessLog,
		},
		health,
		users,
		riskTypes,
		accounts,
	)
}
