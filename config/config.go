package config

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

type Config struct {
	DB          DBConfig          `mapstructure:",squash"`
	Redis       RedisConfig       `mapstructure:",squash"`
	Kafka       KafkaConfig       `mapstructure:",squash"`
	OrderServer OrderServerConfig `mapstructure:",squash"`
	Placement   PlacementConfig   `mapstructure:",squash"`

	HTTPAddr       string `mapstructure:"HTTP_ADDR"`
	ReceiptBaseURL string `mapstructure:"RECEIPT_BASE_URL"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
}

type DBConfig struct {
	Host     string `mapstructure:"DB_HOST"`
	Port     string `mapstructure:"DB_PORT"`
	Name     string `mapstructure:"DB_NAME"`
	User     string `mapstructure:"DB_USER"`
	Password string `mapstructure:"DB_PASSWORD"`
}

type RedisConfig struct {
	Host string `mapstructure:"REDIS_HOST"`
	Port string `mapstructure:"REDIS_PORT"`
}

type KafkaConfig struct {
	Broker      string `mapstructure:"KAFKA_BROKER"`
	OrdersTopic string `mapstructure:"KAFKA_ORDERS_TOPIC"`
	GroupID     string `mapstructure:"KAFKA_GROUP_ID"`
}

type OrderServerConfig struct {
	Host          string        `mapstructure:"ORDER_SERVER_HOST"`
	Port          int           `mapstructure:"ORDER_SERVER_PORT"`
	ReadTimeout   time.Duration `mapstructure:"ORDER_READ_TIMEOUT"`
	RemoteEnabled bool          `mapstructure:"ORDER_REMOTE_ENABLED"`
}

type PlacementConfig struct {
	Resolver          string `mapstructure:"RESTAURANT_RESOLVER"`
	SplitByRestaurant bool   `mapstructure:"SPLIT_BY_RESTAURANT"`
}

var defaults = map[string]any{
	"DB_HOST":              "localhost",
	"DB_PORT":              "5432",
	"DB_NAME":              "food_ordering",
	"DB_USER":              "postgres",
	"DB_PASSWORD":          "",
	"REDIS_HOST":           "",
	"REDIS_PORT":           "6379",
	"KAFKA_BROKER":         "",
	"KAFKA_ORDERS_TOPIC":   "orders",
	"KAFKA_GROUP_ID":       "agg-svc-orders",
	"ORDER_SERVER_HOST":    "127.0.0.1",
	"ORDER_SERVER_PORT":    6000,
	"ORDER_READ_TIMEOUT":   "5s",
	"ORDER_REMOTE_ENABLED": true,
	"RESTAURANT_RESOLVER":  "snapshot",
	"SPLIT_BY_RESTAURANT":  true,
	"HTTP_ADDR":            ":8081",
	"RECEIPT_BASE_URL":     "http://localhost:8081",
	"LOG_LEVEL":            "info",
}

// Load reads a .env file when one exists and then the environment, falling
// back to the defaults above.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.OrderServer.Port < 1 || cfg.OrderServer.Port > 65535 {
		return nil, fmt.Errorf("ORDER_SERVER_PORT %d out of range", cfg.OrderServer.Port)
	}
	return &cfg, nil
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

func (c RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c OrderServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func MustInitPostgres(cfg DBConfig) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		panic(fmt.Errorf("failed to connect to database: %w", err))
	}

	if err = db.Ping(); err != nil {
		panic(fmt.Errorf("failed to ping database: %w", err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		panic(fmt.Errorf("failed to connect to redis: %w", err))
	}

	return client
}

func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.OrdersTopic,
		GroupID: cfg.GroupID,
	})
}

// NewKafkaWriter returns nil when no broker is configured.
func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	if cfg.Broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Broker),
		Topic:                  cfg.OrdersTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}
