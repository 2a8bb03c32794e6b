package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Config holds the settings shared by every service binary. Each service
// reads the subset it needs.
type Config struct {
	ServiceName string
	HTTPAddr    string
	LogLevel    string

	DB DBConfig

	RedisAddr string

	KafkaEnabled     bool
	KafkaBroker      string
	OrderEventsTopic string
	ConsumerGroup    string

	PublicBaseURL string
	HubHeartbeat  time.Duration
	UploadDir     string

	OrderSvcURL     string
	AnalyticsSvcURL string
}

type DBConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN renders the lib/pq connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Load reads configuration from the environment, after applying a .env file
// when one is present.
func Load(service, defaultAddr string) Config {
	_ = godotenv.Load()

	return Config{
		ServiceName: service,
		HTTPAddr:    getenv("HTTP_ADDR", defaultAddr),
		LogLevel:    strings.ToLower(getenv("LOG_LEVEL", "info")),
		DB: DBConfig{
			Host:         getenv("DB_HOST", "localhost"),
			Port:         getenv("DB_PORT", "5432"),
			Name:         getenv("DB_NAME", "restaurant"),
			User:         getenv("DB_USER", "postgres"),
			Password:     getenv("DB_PASSWORD", ""),
			SSLMode:      getenv("DB_SSLMODE", "disable"),
			MaxOpenConns: getenvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getenvInt("DB_MAX_IDLE_CONNS", 5),
		},
		RedisAddr:        getenv("REDIS_HOST", "localhost") + ":" + getenv("REDIS_PORT", "6379"),
		KafkaEnabled:     getenvBool("KAFKA_ENABLED", true),
		KafkaBroker:      getenv("KAFKA_BROKER", "localhost:9092"),
		OrderEventsTopic: getenv("ORDER_EVENTS_TOPIC", "order-events"),
		ConsumerGroup:    getenv("KAFKA_CONSUMER_GROUP", service+"-consumer"),
		PublicBaseURL:    strings.TrimRight(getenv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		HubHeartbeat:     getenvDuration("HUB_HEARTBEAT", 15*time.Second),
		UploadDir:        getenv("UPLOAD_DIR", "./uploads"),
		OrderSvcURL:      getenv("ORDER_SVC_URL", "http://localhost:8081"),
		AnalyticsSvcURL:  getenv("ANALYTICS_SVC_URL", "http://localhost:8083"),
	}
}

func MustInitPostgres(cfg DBConfig, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		logger.Fatal("failed to ping database", zap.String("host", cfg.Host), zap.Error(err))
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(addr string, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.String("addr", addr), zap.Error(err))
	}

	return client
}

func NewKafkaReader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
