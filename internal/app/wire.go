//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"marketplace/internal/handlers/rest/buyer_login_post"
	"marketplace/internal/handlers/rest/buyer_register_post"
	"marketplace/internal/handlers/rest/catalog_put"
	"marketplace/internal/handlers/rest/manufacturer_get"
	"marketplace/internal/handlers/rest/manufacturer_login_post"
	"marketplace/internal/handlers/rest/manufacturer_register_post"
	"marketplace/internal/handlers/rest/manufacturers_get"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_post"
	"marketplace/internal/handlers/rest/order_status_put"
	"marketplace/internal/handlers/rest/orders_get"
	"marketplace/internal/handlers/tasks/order_stats"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/order_id"
	"marketplace/internal/pkg/kafka"
	"marketplace/internal/pkg/password"
	"marketplace/internal/pkg/token"

	accountRepo "marketplace/internal/repository/account"
	orderRepo "marketplace/internal/repository/order"
	accountService "marketplace/internal/service/account"
	auditService "marketplace/internal/service/audit"
	orderService "marketplace/internal/service/order"

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StatsInterval time.Duration
)

type Application struct {
	ServiceAccount    ServiceAccount
	ServiceOrder      ServiceOrder
	Tokens            *token.Service
	BackgroundWorkers *background.Worker
}

type ServiceAccount interface {
	manufacturer_register_post.Service
	manufacturer_login_post.Service
	buyer_register_post.Service
	buyer_login_post.Service
	manufacturers_get.Service
	manufacturer_get.Service
	catalog_put.Service
}

type ServiceOrder interface {
	order_post.Service
	orders_get.Service
	order_get.Service
	order_status_put.Service
}

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatsInterval,
		provideTokenService,
		password.New,
		order_id.New,

		provideAccountRepository,
		provideOrderRepository,

		provideServiceAccount,
		provideServiceOrder,

		provideOrderStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAccount), new(*accountService.Account)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),

		wire.Bind(new(accountService.Repository), new(*accountRepo.Repository)),
		wire.Bind(new(accountService.PasswordHasher), new(*password.Hasher)),
		wire.Bind(new(accountService.TokenIssuer), new(*token.Service)),
		wire.Bind(new(accountService.TxManager), new(*tx.Manager)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.AccountService), new(*accountService.Account)),
		wire.Bind(new(orderService.EventPublisher), new(*kafka.Producer)),
		wire.Bind(new(orderService.IDFactory), new(*order_id.OrderIDFactory)),

		wire.Bind(new(order_stats.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	AuditService *auditService.Service
}

// InitializeKafkaWorkerApp wires the history worker (cmd/worker-order-events).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideOrderRepository,
		provideAuditService,

		wire.Bind(new(auditService.Repository), new(*orderRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideTokenService(cfg *config.Config) *token.Service {
	return token.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideServiceAccount(
	repository accountService.Repository,
	hasher accountService.PasswordHasher,
	tokens accountService.TokenIssuer,
	txManager accountService.TxManager,
) *accountService.Account {
	return accountService.New(repository, hasher, tokens, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	accounts orderService.AccountService,
	publisher orderService.EventPublisher,
	idFactory orderService.IDFactory,
) *orderService.Service {
	return orderService.New(repository, accounts, publisher, idFactory)
}

func provideAuditService(repository auditService.Repository) *auditService.Service {
	return auditService.New(repository)
}

func provideStatsInterval(cfg *config.Config) StatsInterval {
	return StatsInterval(cfg.Tasks.OrderStatsInterval)
}

func provideOrderStatsTask(
	log logger.Logger,
	orderService order_stats.Service,
	interval StatsInterval,
) *order_stats.OrderStats {
	return order_stats.NewOrderStats(log, orderService, time.Duration(interval))
}

func provideTaskList(
	orderStatsTask *order_stats.OrderStats,
) []background.Task {
	return []background.Task{
		orderStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
