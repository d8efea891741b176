package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr    string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN   string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"secret"`
	TokenTTL      string `env:"TOKEN_TTL" envDefault:"24h"`
	RedisURL      string `env:"REDIS_URL" envDefault:""`
	RabbitMQURL   string `env:"RABBITMQ_URL" envDefault:""`
	AuthRateLimit int    `env:"AUTH_RATE_LIMIT" envDefault:"10"`
	AuthRateBurst int    `env:"AUTH_RATE_BURST" envDefault:"5"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	DatabaseDSN string
}

// AuthConfig модель настроек выдачи токенов и ограничения запросов к /api/auth
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// запросов в секунду с одного адреса
	RateLimit int
	RateBurst int
}

// BrokerConfig модель настроек внешних сервисов, пустой адрес - сервис не используется
type BrokerConfig struct {
	RedisURL    string
	RabbitMQURL string
}

// Config модель настроек сервиса
type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Broker BrokerConfig
}

func NewConfig() Config {
	// .env не обязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server    = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel  = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN       = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret    = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		ttl       = pflag.StringP("token_ttl", "t", args.TokenTTL, "JWT lifetime, e.g. 24h")
		redisURL  = pflag.StringP("redis", "r", args.RedisURL, "Redis URL for sessions, e.g. redis://localhost:6379/0")
		rabbitURL = pflag.StringP("rabbitmq", "q", args.RabbitMQURL, "RabbitMQ URL for domain events")
		rateLimit = pflag.Int("auth_rate_limit", args.AuthRateLimit, "Auth requests per second per client")
		rateBurst = pflag.Int("auth_rate_burst", args.AuthRateBurst, "Auth requests burst per client")
	)
	pflag.Parse()

	tokenTTL, err := time.ParseDuration(*ttl)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse token ttl: %s", err.Error()))
	}

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
		},
		Auth: AuthConfig{
			JWTSecret: *secret,
			TokenTTL:  tokenTTL,
			RateLimit: *rateLimit,
			RateBurst: *rateBurst,
		},
		Broker: BrokerConfig{
			RedisURL:    *redisURL,
			RabbitMQURL: *rabbitURL,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
		},
		Auth: AuthConfig{
			JWTSecret: "secret",
			TokenTTL:  24 * time.Hour,
			RateLimit: 10,
			RateBurst: 5,
		},
	}
}
