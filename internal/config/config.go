package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Metrics MetricsConfig
	S3      S3Config
	Log     LogConfig
}

type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIConfig ограничения HTTP API.
// Лимиты самой валидации изображений не настраиваются.
type APIConfig struct {
	MaxBatchSize int   `env:"API_MAX_BATCH_SIZE" envDefault:"100"`
	MaxBodyBytes int64 `env:"API_MAX_BODY_BYTES" envDefault:"1048576"`
}

type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// S3Config бакет, из которого раздаётся статика сайта.
// Туда публикуется документ с политикой загрузки.
type S3Config struct {
	Endpoint  string `env:"S3_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"S3_ACCESS_KEY" envDefault:"minioadmin"`
	SecretKey string `env:"S3_SECRET_KEY" envDefault:"minioadmin"`
	Bucket    string `env:"S3_BUCKET" envDefault:"leafguard-static"`
	UseSSL    bool   `env:"S3_USE_SSL" envDefault:"false"`
	PolicyKey string `env:"S3_POLICY_KEY" envDefault:"config/upload-policy.json"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// json или console
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	_ = godotenv.Load()

	return Parse()
}

// Parse разбирает переменные окружения без чтения .env
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate проверяет значения, которые env не может проверить сам
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT must be in 1..65535, got %d", c.Server.Port))
	}
	if c.API.MaxBatchSize < 1 {
		errs = append(errs, fmt.Errorf("API_MAX_BATCH_SIZE must be positive, got %d", c.API.MaxBatchSize))
	}
	if c.API.MaxBodyBytes < 1 {
		errs = append(errs, fmt.Errorf("API_MAX_BODY_BYTES must be positive, got %d", c.API.MaxBodyBytes))
	}
	if c.S3.PolicyKey == "" {
		errs = append(errs, errors.New("S3_POLICY_KEY must not be empty"))
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}
