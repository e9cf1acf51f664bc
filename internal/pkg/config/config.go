package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		CheckoutExpiryInterval   time.Duration
		OutboxRelayInterval      time.Duration
		OutboxBatchSize          int
		RateLimiterEvictInterval time.Duration
	}

	HTTPServer struct {
		Port               string
		RequestTimeout     time.Duration // middleware timeout
		RateLimiterQPS     int           // емкость бакета на клиента
		RateLimiterBurst   int           // пополнение токенов в секунду
		RateLimiterIdleTTL time.Duration // после скольки секунд простоя бакет клиента удаляется
		PprofEnabled       bool
		PprofPort          string
	}

	Database struct {
		Host              string
		Port              string
		User              string
		Password          string
		DBName            string
		SSLMode           string
		MigrationsEnabled bool
	}

	Auth struct {
		JWTSecret string
		Issuer    string
	}

	Checkout struct {
		BaseURL    string
		SecretKey  string
		SuccessURL string
		CancelURL  string
		Currency   string
		Timeout    time.Duration
	}

	ImageHost struct {
		BaseURL string
		APIKey  string
		Timeout time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderEvents OrderEvents
	}

	OrderEvents struct {
		ProcessTimeout time.Duration
	}

	Redis struct {
		Addr          string
		Password      string
		DB            int
		ChannelPrefix string
	}

	Log struct {
		Level string
	}

	Config struct {
		Tasks     Tasks
		Server    HTTPServer
		Database  Database
		Auth      Auth
		Checkout  Checkout
		ImageHost ImageHost
		Kafka     Kafka
		Redis     Redis
		Log       Log
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	checkoutExpiryInterval, err := osGetEnvDuration("BACKGROUND_CHECKOUT_EXPIRY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	outboxRelayInterval, err := osGetEnvDuration("BACKGROUND_OUTBOX_RELAY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	outboxBatchSize, err := osGetInt("BACKGROUND_OUTBOX_BATCH_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterEvictInterval, err := osGetEnvDuration("BACKGROUND_RATE_LIMITER_EVICT_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderEventsTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_EVENTS_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterIdleTTL, err := osGetEnvDuration("MIDDLEWARE_RATE_LIMIT_IDLE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrationsEnabled, err := osGetBool("POSTGRES_MIGRATIONS_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	checkoutTimeout, err := osGetEnvDuration("CHECKOUT_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	imageHostTimeout, err := osGetEnvDuration("IMAGE_HOST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			CheckoutExpiryInterval:   checkoutExpiryInterval,
			OutboxRelayInterval:      outboxRelayInterval,
			OutboxBatchSize:          outboxBatchSize,
			RateLimiterEvictInterval: rateLimiterEvictInterval,
		},
		Server: HTTPServer{
			Port:               os.Getenv("PORT"),
			RequestTimeout:     requestTimeout,
			RateLimiterQPS:     rateLimiterQPS,
			RateLimiterBurst:   rateLimiterBurst,
			RateLimiterIdleTTL: rateLimiterIdleTTL,
			PprofEnabled:       pprofEnabled,
			PprofPort:          os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:              os.Getenv("POSTGRES_HOST"),
			Port:              os.Getenv("POSTGRES_PORT"),
			User:              os.Getenv("POSTGRES_USER"),
			Password:          os.Getenv("POSTGRES_PASSWORD"),
			DBName:            os.Getenv("POSTGRES_DB"),
			SSLMode:           os.Getenv("POSTGRES_SSLMODE"),
			MigrationsEnabled: migrationsEnabled,
		},
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
			Issuer:    os.Getenv("AUTH_JWT_ISSUER"),
		},
		Checkout: Checkout{
			BaseURL:    os.Getenv("CHECKOUT_BASE_URL"),
			SecretKey:  os.Getenv("CHECKOUT_SECRET_KEY"),
			SuccessURL: os.Getenv("CHECKOUT_SUCCESS_URL"),
			CancelURL:  os.Getenv("CHECKOUT_CANCEL_URL"),
			Currency:   osGetEnvDefault("CHECKOUT_CURRENCY", "usd"),
			Timeout:    checkoutTimeout,
		},
		ImageHost: ImageHost{
			BaseURL: os.Getenv("IMAGE_HOST_BASE_URL"),
			APIKey:  os.Getenv("IMAGE_HOST_API_KEY"),
			Timeout: imageHostTimeout,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderEvents: OrderEvents{
					ProcessTimeout: orderEventsTimeout,
				},
			},
		},
		Redis: Redis{
			Addr:          os.Getenv("REDIS_ADDR"),
			Password:      os.Getenv("REDIS_PASSWORD"),
			DB:            redisDB,
			ChannelPrefix: osGetEnvDefault("REDIS_CHANNEL_PREFIX", "orders:events:"),
		},
		Log: Log{
			Level: osGetEnvDefault("LOG_LEVEL", "info"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.RateLimiterIdleTTL == time.Duration(0) {
		return errors.New("MIDDLEWARE_RATE_LIMIT_IDLE_TTL is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}

	if cfg.Checkout.BaseURL == "" {
		return errors.New("CHECKOUT_BASE_URL is required")
	}
	if cfg.Checkout.SecretKey == "" {
		return errors.New("CHECKOUT_SECRET_KEY is required")
	}
	if cfg.Checkout.SuccessURL == "" {
		return errors.New("CHECKOUT_SUCCESS_URL is required")
	}
	if cfg.Checkout.CancelURL == "" {
		return errors.New("CHECKOUT_CANCEL_URL is required")
	}
	if cfg.Checkout.Timeout == time.Duration(0) {
		return errors.New("CHECKOUT_TIMEOUT is required")
	}

	if cfg.ImageHost.BaseURL == "" {
		return errors.New("IMAGE_HOST_BASE_URL is required")
	}
	if cfg.ImageHost.APIKey == "" {
		return errors.New("IMAGE_HOST_API_KEY is required")
	}
	if cfg.ImageHost.Timeout == time.Duration(0) {
		return errors.New("IMAGE_HOST_TIMEOUT is required")
	}

	if cfg.Tasks.CheckoutExpiryInterval == time.Duration(0) {
		return errors.New("BACKGROUND_CHECKOUT_EXPIRY_INTERVAL is required")
	}
	if cfg.Tasks.OutboxRelayInterval == time.Duration(0) {
		return errors.New("BACKGROUND_OUTBOX_RELAY_INTERVAL is required")
	}
	if cfg.Tasks.OutboxBatchSize <= 0 {
		return errors.New("BACKGROUND_OUTBOX_BATCH_SIZE is required")
	}
	if cfg.Tasks.RateLimiterEvictInterval == time.Duration(0) {
		return errors.New("BACKGROUND_RATE_LIMITER_EVICT_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderEvents.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_EVENTS_PROCESS_TIMEOUT is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	return nil
}

func osGetEnvDefault(s, fallback string) string {
	if val := os.Getenv(s); val != "" {
		return val
	}
	return fallback
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
