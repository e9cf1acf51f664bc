//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	checkoutGateway "garmentflow/internal/gateway/checkout"
	imageHostGateway "garmentflow/internal/gateway/imagehost"
	"garmentflow/internal/handlers/tasks/checkout_expiry"
	"garmentflow/internal/handlers/tasks/outbox_relay"
	"garmentflow/internal/handlers/tasks/rate_limiter_evict"
	"garmentflow/internal/pkg/config"
	orderRepo "garmentflow/internal/repository/order"
	outboxRepo "garmentflow/internal/repository/outbox"
	paymentRepo "garmentflow/internal/repository/payment"
	productRepo "garmentflow/internal/repository/product"
	orderService "garmentflow/internal/service/order"
	paymentService "garmentflow/internal/service/payment"
	productService "garmentflow/internal/service/product"
	"garmentflow/pkg/logger"
	"garmentflow/pkg/token_bucket"
	"garmentflow/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideProductRepository,
		providePaymentRepository,
		provideOutboxRepository,

		provideCheckoutGateway,
		provideImageHostGateway,
		provideOrderEventsBus,
		provideVerifier,
		provideRateLimiter,

		provideServiceProduct,
		provideServiceOrder,
		provideServicePayment,

		provideCheckoutExpiryTask,
		provideOutboxRelayTask,
		provideRateLimiterEvictTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceProduct), new(*productService.Service)),
		wire.Bind(new(ServicePayment), new(*paymentService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.ProductService), new(*productService.Service)),
		wire.Bind(new(orderService.Outbox), new(*outboxRepo.Repository)),
		wire.Bind(new(productService.Repository), new(*productRepo.Repository)),
		wire.Bind(new(productService.ImageHost), new(*imageHostGateway.ImageHostGateway)),
		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(paymentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(paymentService.CheckoutProvider), new(*checkoutGateway.CheckoutGateway)),
		wire.Bind(new(paymentService.Outbox), new(*outboxRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(productService.TxManager), new(*tx.Manager)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(outbox_relay.TxManager), new(*tx.Manager)),

		wire.Bind(new(checkout_expiry.Service), new(*paymentService.Service)),
		wire.Bind(new(outbox_relay.Outbox), new(*outboxRepo.Repository)),
		wire.Bind(new(rate_limiter_evict.Limiter), new(*token_bucket.Keyed)),
	)
	return &Application{}, nil
}

// InitializeOrderEventsWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeOrderEventsWorkerApp(
	log logger.Logger,
	redisClient *redis.Client,
	cfg *config.Config,
) (*OrderEventsWorkerApp, error) {
	wire.Build(
		provideOrderEventsBus,
		provideOrderEventsHandler,

		wire.Struct(new(OrderEventsWorkerApp), "*"),
	)
	return nil, nil
}
