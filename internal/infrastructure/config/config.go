package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	App struct {
		Name            string
		Port            string
		ShutdownTimeout time.Duration
		LogFormat       string
		LogLevel        string
	}
	Database struct {
		Driver          string
		Dsn             string
		MaxIdleConns    int
		MaxOpenConns    int
		ConnMaxLifetime time.Duration
		AutoMigrate     bool
	}
	Redis struct {
		URL          string
		FeedCacheTTL time.Duration
	}
	RabbitMQ struct {
		URL   string
		Queue string
	}
	JWT struct {
		Secret         string
		AccessTokenTTL time.Duration
	}
	RateLimit struct {
		RequestsPerSecond float64
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// environment variables that override the yml keys
var envBindings = map[string]string{
	"app.port":                    "PORT",
	"app.logformat":               "LOG_FORMAT",
	"app.loglevel":                "LOG_LEVEL",
	"database.driver":             "DB_DRIVER",
	"database.dsn":                "DB_DSN",
	"database.automigrate":        "DB_AUTO_MIGRATE",
	"redis.url":                   "REDIS_URL",
	"redis.feedcachettl":          "FEED_CACHE_TTL",
	"rabbitmq.url":                "RABBITMQ_URL",
	"rabbitmq.queue":              "RABBITMQ_QUEUE",
	"jwt.secret":                  "JWT_SECRET",
	"jwt.accesstokenttl":          "ACCESS_TOKEN_TTL",
	"ratelimit.requestspersecond": "RATE_LIMIT_RPS",
}

// Load reads config.yml from configDir (optional), a .env file in the working
// directory (optional) and the environment, in increasing precedence.
func Load(configDir string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "qaforum")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.shutdowntimeout", 10*time.Second)
	v.SetDefault("app.logformat", "json")
	v.SetDefault("app.loglevel", "info")
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.maxidleconns", 10)
	v.SetDefault("database.maxopenconns", 50)
	v.SetDefault("database.connmaxlifetime", time.Hour)
	v.SetDefault("database.automigrate", true)
	v.SetDefault("redis.feedcachettl", 30*time.Second)
	v.SetDefault("rabbitmq.queue", "like.queue")
	v.SetDefault("jwt.accesstokenttl", 24*time.Hour)
	v.SetDefault("ratelimit.requestspersecond", 10.0)
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET environment variable not set")
	}
	if c.Database.Dsn == "" {
		return errors.New("DB_DSN environment variable not set")
	}
	switch strings.ToLower(c.Database.Driver) {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("rate limit must be positive, got %v", c.RateLimit.RequestsPerSecond)
	}
	return nil
}

// GetAccessTokenExpiry returns the lifetime of issued access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.JWT.AccessTokenTTL
}

// GetFeedCacheTTL returns how long the cached question feed stays valid.
func (c *Config) GetFeedCacheTTL() time.Duration {
	return c.Redis.FeedCacheTTL
}
