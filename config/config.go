package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config is read from environment variables named after the upper-cased keys
// (PORT, DB_HOST, ...), optionally layered over a config file.
type Config struct {
	Port          string `mapstructure:"port"`
	DataDir       string `mapstructure:"data_dir"`
	StaticDir     string `mapstructure:"static_dir"`
	StorageDriver string `mapstructure:"storage_driver"`
	MigrationsDir string `mapstructure:"migrations_dir"`

	MerchantID    string `mapstructure:"merchant_id"`
	MerchantName  string `mapstructure:"merchant_name"`
	SessionSecret string `mapstructure:"session_secret"`

	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBName     string `mapstructure:"db_name"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`

	RedisHost       string        `mapstructure:"redis_host"`
	RedisPort       string        `mapstructure:"redis_port"`
	PaymentCacheTTL time.Duration `mapstructure:"payment_cache_ttl"`

	KafkaBroker   string `mapstructure:"kafka_broker"`
	PaymentsTopic string `mapstructure:"payments_topic"`
	SalesGroupID  string `mapstructure:"sales_group_id"`

	ShopSvcURL  string `mapstructure:"shop_svc_url"`
	SalesSvcURL string `mapstructure:"sales_svc_url"`

	LogLevel string `mapstructure:"log_level"`
}

var defaults = map[string]interface{}{
	"port":              "8080",
	"data_dir":          "data",
	"static_dir":        "static",
	"storage_driver":    StorageFile,
	"migrations_dir":    "migrations",
	"merchant_id":       "ID1020304050607",
	"merchant_name":     "Warung QRIS",
	"session_secret":    "change-me-in-production-please!!",
	"db_host":           "localhost",
	"db_port":           "5432",
	"db_name":           "warung",
	"db_user":           "postgres",
	"db_password":       "",
	"redis_host":        "",
	"redis_port":        "6379",
	"payment_cache_ttl": time.Hour,
	"kafka_broker":      "",
	"payments_topic":    "payments",
	"sales_group_id":    "sales-svc",
	"shop_svc_url":      "http://localhost:8081",
	"sales_svc_url":     "http://localhost:8082",
	"log_level":         "info",
}

// Load reads configuration from the environment. A non-empty path adds a config
// file underneath it; environment variables still win.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageFile, StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if len(c.SessionSecret) < 16 {
		return errors.New("session secret must be at least 16 bytes")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func (c *Config) KafkaEnabled() bool {
	return c.KafkaBroker != ""
}

func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

func MustInitPostgres(cfg *Config, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err = db.Ping(); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg *Config, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	return client
}

func NewKafkaReader(cfg *Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.PaymentsTopic,
		GroupID: cfg.SalesGroupID,
	})
}

func NewKafkaWriter(cfg *Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.PaymentsTopic,
		Balancer: &kafka.Hash{},
	}
}
