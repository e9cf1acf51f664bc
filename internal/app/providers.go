package app

import (
	"context"
	"net/http"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	checkoutGateway "garmentflow/internal/gateway/checkout"
	imageHostGateway "garmentflow/internal/gateway/imagehost"
	"garmentflow/internal/gateway/orderevents"
	"garmentflow/internal/handlers/kafka-consumer/order_events"
	"garmentflow/internal/handlers/tasks/checkout_expiry"
	"garmentflow/internal/handlers/tasks/outbox_relay"
	"garmentflow/internal/handlers/tasks/rate_limiter_evict"
	"garmentflow/internal/pkg/auth"
	"garmentflow/internal/pkg/config"
	orderRepo "garmentflow/internal/repository/order"
	outboxRepo "garmentflow/internal/repository/outbox"
	paymentRepo "garmentflow/internal/repository/payment"
	productRepo "garmentflow/internal/repository/product"
	orderService "garmentflow/internal/service/order"
	paymentService "garmentflow/internal/service/payment"
	productService "garmentflow/internal/service/product"
	"garmentflow/pkg/background"
	"garmentflow/pkg/logger"
	"garmentflow/pkg/querier"
	"garmentflow/pkg/token_bucket"
	"garmentflow/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideCheckoutGateway(cfg *config.Config) *checkoutGateway.CheckoutGateway {
	return checkoutGateway.New(&http.Client{Timeout: cfg.Checkout.Timeout}, &cfg.Checkout)
}

func provideImageHostGateway(cfg *config.Config) *imageHostGateway.ImageHostGateway {
	return imageHostGateway.New(&http.Client{Timeout: cfg.ImageHost.Timeout}, &cfg.ImageHost)
}

func provideOrderEventsBus(client *redis.Client, cfg *config.Config) *orderevents.Bus {
	return orderevents.New(client, cfg.Redis.ChannelPrefix)
}

func provideVerifier(cfg *config.Config) *auth.Verifier {
	return auth.NewVerifier(&cfg.Auth)
}

func provideRateLimiter(cfg *config.Config) *token_bucket.Keyed {
	return token_bucket.NewKeyed(
		cfg.Server.RateLimiterQPS,
		float64(cfg.Server.RateLimiterBurst),
		cfg.Server.RateLimiterIdleTTL,
	)
}

func provideServiceProduct(
	repository productService.Repository,
	imageHost productService.ImageHost,
	txManager productService.TxManager,
) *productService.Service {
	return productService.New(repository, imageHost, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	products orderService.ProductService,
	outbox orderService.Outbox,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, products, outbox, txManager)
}

func provideServicePayment(
	repository paymentService.Repository,
	orderRepository paymentService.OrderRepository,
	provider paymentService.CheckoutProvider,
	outbox paymentService.Outbox,
	txManager paymentService.TxManager,
	cfg *config.Config,
) *paymentService.Service {
	return paymentService.New(repository, orderRepository, provider, outbox, txManager, cfg.Checkout.Currency)
}

func provideCheckoutExpiryTask(
	log logger.Logger,
	service checkout_expiry.Service,
	cfg *config.Config,
) *checkout_expiry.CheckoutExpiry {
	return checkout_expiry.NewCheckoutExpiry(log, service, cfg.Tasks.CheckoutExpiryInterval)
}

func provideOutboxRelayTask(
	log logger.Logger,
	outbox outbox_relay.Outbox,
	producer sarama.SyncProducer,
	txManager outbox_relay.TxManager,
	cfg *config.Config,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(
		log,
		outbox,
		producer,
		txManager,
		cfg.Kafka.Topic,
		cfg.Tasks.OutboxBatchSize,
		cfg.Tasks.OutboxRelayInterval,
	)
}

func provideRateLimiterEvictTask(
	log logger.Logger,
	limiter rate_limiter_evict.Limiter,
	cfg *config.Config,
) *rate_limiter_evict.RateLimiterEvict {
	return rate_limiter_evict.NewRateLimiterEvict(log, limiter, cfg.Tasks.RateLimiterEvictInterval)
}

func provideTaskList(
	checkoutExpiryTask *checkout_expiry.CheckoutExpiry,
	outboxRelayTask *outbox_relay.OutboxRelay,
	rateLimiterEvictTask *rate_limiter_evict.RateLimiterEvict,
) []background.Task {
	return []background.Task{
		checkoutExpiryTask,
		outboxRelayTask,
		rateLimiterEvictTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideOrderEventsHandler(log logger.Logger, bus *orderevents.Bus, cfg *config.Config) *order_events.Handler {
	return order_events.New(log, bus, cfg.Kafka.Handlers.OrderEvents.ProcessTimeout)
}
