package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMySQL = "mysql"
)

// Session cookie formats.
const (
	SessionJSON = "json"
	SessionJWT  = "jwt"
)

// Config holds application level configuration loaded from environment variables
// and, optionally, a YAML file named by CONFIG_PATH.
type Config struct {
	Env             string        `yaml:"env" env:"APP_ENV" env-default:"dev"`
	ServerPort      string        `yaml:"server_port" env:"SERVER_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`

	StoreBackend string `yaml:"store_backend" env:"STORE_BACKEND" env-default:"file"`
	UsersFile    string `yaml:"users_file" env:"USERS_FILE" env-default:"public/users.json"`
	MySQLDSN     string `yaml:"mysql_dsn" env:"MYSQL_DSN" env-default:"user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=Local"`
	RedisAddr    string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisDB      int    `yaml:"redis_db" env:"REDIS_DB" env-default:"0"`
	RedisPass    string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisKey     string `yaml:"redis_users_key" env:"REDIS_USERS_KEY" env-default:"users"`

	SessionCookie string        `yaml:"session_cookie" env:"SESSION_COOKIE" env-default:"session"`
	SessionTTL    time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"24h"`
	SessionFormat string        `yaml:"session_format" env:"SESSION_FORMAT" env-default:"json"`
	JWTSecret     string        `yaml:"jwt_secret" env:"JWT_SECRET" env-default:"change-me"`

	AllowedOrigins []string `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
	LogLevel       string   `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat      string   `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`
	SwaggerHost    string   `yaml:"swagger_host" env:"SWAGGER_HOST"`
}

// Load builds Config from an optional .env file, an optional CONFIG_PATH file
// and the environment, in increasing order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendFile, BackendRedis, BackendMySQL:
	default:
		return fmt.Errorf("STORE_BACKEND must be one of file, redis, mysql; got %q", c.StoreBackend)
	}

	switch c.SessionFormat {
	case SessionJSON:
	case SessionJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when SESSION_FORMAT=jwt")
		}
	default:
		return fmt.Errorf("SESSION_FORMAT must be json or jwt; got %q", c.SessionFormat)
	}

	if c.SessionCookie == "" {
		return fmt.Errorf("SESSION_COOKIE must not be empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}
