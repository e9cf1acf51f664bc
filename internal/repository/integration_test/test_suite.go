package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"

	"garmentflow/internal/pkg/config"
	"garmentflow/internal/pkg/migrations"
	"garmentflow/internal/pkg/postgres"
	"garmentflow/pkg/logger/zap_adapter"
	"garmentflow/pkg/querier"
	"garmentflow/pkg/tx"
)

var (
	querierInstance   *querier.Querier
	txManagerInstance *tx.Manager
	querierOnce       sync.Once
)

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		if err := migrations.Up(ctx, zapLogger, connPool); err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
		txManagerInstance = tx.New(connPool)
	})

	return querierInstance
}

func GetTxManager() *tx.Manager {
	GetQuerier()
	return txManagerInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE outbox, payment_confirmations, checkout_sessions, order_tracking, orders, products
		RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}

// SeedCatalogSQL - товар и заказ, на которых строятся тесты репозиториев.
const SeedCatalogSQL = `
	INSERT INTO products (id, manager_id, title, category, price, minimum_order_quantity,
		available_quantity, payment_methods)
	VALUES ('product-1', 'manager-1', 'Denim Jacket', 'Jacket', 12.50, 50, 500, '{Stripe,"Cash on Delivery"}');

	INSERT INTO orders (id, buyer_id, buyer_email, product_id, product_title, product_category, manager_id,
		unit_price, quantity, total_price, delivery_address, contact_number, payment_method, status)
	VALUES ('order-1', 'buyer-1', 'buyer@example.com', 'product-1', 'Denim Jacket', 'Jacket', 'manager-1',
		12.50, 100, 1250.00, '12 Mill Road', '+8801712345678', 'Stripe', 'Pending');
`
