package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "garmentflow/internal/app"
	"garmentflow/internal/handlers/rest/checkout_session_post"
	"garmentflow/internal/handlers/rest/healthcheck_head"
	"garmentflow/internal/handlers/rest/image_post"
	"garmentflow/internal/handlers/rest/order_delete"
	"garmentflow/internal/handlers/rest/order_events_get"
	"garmentflow/internal/handlers/rest/order_get"
	"garmentflow/internal/handlers/rest/order_status_patch"
	"garmentflow/internal/handlers/rest/order_tracking_get"
	"garmentflow/internal/handlers/rest/order_tracking_patch"
	"garmentflow/internal/handlers/rest/orders_get"
	"garmentflow/internal/handlers/rest/orders_post"
	"garmentflow/internal/handlers/rest/payment_success_patch"
	"garmentflow/internal/handlers/rest/ping_get"
	"garmentflow/internal/handlers/rest/product_get"
	"garmentflow/internal/handlers/rest/product_patch"
	"garmentflow/internal/handlers/rest/product_post"
	"garmentflow/internal/handlers/rest/products_get"
	"garmentflow/internal/pkg/config"
	"garmentflow/internal/pkg/dotenv"
	"garmentflow/internal/pkg/kafka"
	metrics_system "garmentflow/internal/pkg/metrics"
	"garmentflow/internal/pkg/middlewares/auth"
	"garmentflow/internal/pkg/middlewares/graceful_shutdown"
	"garmentflow/internal/pkg/middlewares/metrics"
	"garmentflow/internal/pkg/middlewares/rate_limiter"
	"garmentflow/internal/pkg/middlewares/timeout"
	"garmentflow/internal/pkg/migrations"
	"garmentflow/internal/pkg/postgres"
	"garmentflow/internal/pkg/redis"
	"garmentflow/pkg/logger"
	"garmentflow/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting garmentflow application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrationsEnabled {
		if err := migrations.Up(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client", logger.NewField("error", err))
		}
	}()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		// без WriteTimeout: SSE поток живет дольше любого таймаута,
		// обычные запросы ограничивает timeout middleware
		IdleTimeout: 60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	// SSE соединения держат Shutdown до отмены BaseContext
	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))

	// лимитер стоит после auth, чтобы бакет выбирался по actor id
	limit := rate_limiter.Middleware(log, cfg.RateLimiterQPS, app.RateLimiter)
	authenticate := auth.Middleware(log, app.Verifier)
	public := limit
	protected := func(h http.Handler) http.Handler { return authenticate(limit(h)) }

	router.Handle("/metrics", public(promhttp.Handler()))
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.Handle("/ping", public(ping_get.New(log))).Methods("GET")

	router.Handle("/products", public(products_get.New(log, app.ServiceProduct))).Methods("GET")
	router.Handle("/products/{id}", public(product_get.New(log, app.ServiceProduct))).Methods("GET")
	router.Handle("/products", protected(product_post.New(log, app.ServiceProduct))).Methods("POST")
	router.Handle("/products/{id}", protected(product_patch.New(log, app.ServiceProduct))).Methods("PATCH")
	router.Handle("/images", protected(image_post.New(log, app.ServiceProduct))).Methods("POST")

	router.Handle("/orders", protected(orders_post.New(log, app.ServiceOrder))).Methods("POST")
	router.Handle("/orders", protected(orders_get.New(log, app.ServiceOrder))).Methods("GET")
	router.Handle("/orders/{id}", protected(order_get.New(log, app.ServiceOrder))).Methods("GET")
	router.Handle("/orders/{id}", protected(order_delete.New(log, app.ServiceOrder))).Methods("DELETE")
	router.Handle("/orders/{id}/status", protected(order_status_patch.New(log, app.ServiceOrder))).Methods("PATCH")
	router.Handle("/orders/{id}/tracking", protected(order_tracking_patch.New(log, app.ServiceOrder))).Methods("PATCH")
	router.Handle("/orders/{id}/tracking", protected(order_tracking_get.New(log, app.ServiceOrder))).Methods("GET")
	router.Handle("/orders/{id}/events", protected(order_events_get.New(log, app.ServiceOrder, app.OrderEvents))).Methods("GET")

	router.Handle("/create-checkout-session", protected(checkout_session_post.New(log, app.ServicePayment))).Methods("POST")
	router.Handle("/payment-success", protected(payment_success_patch.New(log, app.ServicePayment))).Methods("PATCH")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
