package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int           `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN      string        `env:"POSTGRES_DSN"`
	PostgresMaxConns int32         `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret        string        `env:"JWT_SECRET"`
	JWTTTL           time.Duration `env:"JWT_TTL" envDefault:"24h"`
	DefaultPageSize  uint64        `env:"DEFAULT_PAGE_SIZE" envDefault:"10"`
	FrontendURL      string        `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	Bootstrap        Bootstrap
	Kafka            Kafka
	Mailer           Mailer
}

type Bootstrap struct {
	AdminName     string `env:"BOOTSTRAP_ADMIN_NAME" envDefault:"System Admin"`
	AdminEmail    string `env:"BOOTSTRAP_ADMIN_EMAIL"`
	AdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

type Kafka struct {
	Brokers      []string `env:"KAFKA_BROKERS" envDefault:"kafka:9092"`
	ConsumerID   string   `env:"KAFKA_CONSUMER_ID" envDefault:"materials"`
	AccountTopic string   `env:"KAFKA_ACCOUNT_TOPIC" envDefault:"send-notifications"`
}

type Mailer struct {
	Enabled  bool   `env:"MAIL_ENABLED" envDefault:"false"`
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Materials"`
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	err = c.Validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) Validate() error {
	if c.PostgresDSN == "" {
		return errors.New("POSTGRES_DSN is required")
	}

	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	if c.DefaultPageSize == 0 {
		return errors.New("DEFAULT_PAGE_SIZE must be positive")
	}

	return nil
}
