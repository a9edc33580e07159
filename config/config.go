package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Auth
	Auth AuthConfig

	// Storage
	Postgres PostgresConfig
	Redis    RedisConfig

	// Chatbot specifics
	Chat ChatConfig

	// Upstream AI services
	Gemini   GeminiConfig
	Deepgram DeepgramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN builds the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ChatConfig tunes the conversational pipeline.
// SessionStore selects where chat history lives: "memory" or "redis".
type ChatConfig struct {
	SessionStore    string
	HistoryLimit    int
	RateLimitPerMin int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type DeepgramConfig struct {
	APIKey string
	Model  string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Auth
	cfg.Auth.Secret = viper.GetString("auth.secret")
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")
	if secret := viper.GetString("auth_secret"); secret != "" {
		cfg.Auth.Secret = secret
	}
	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("auth.secret is required - set AUTH_SECRET or auth.secret in config.yaml")
	}

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.ssl_mode")
	if pgPassword := viper.GetString("postgres_password"); pgPassword != "" {
		cfg.Postgres.Password = pgPassword
	}

	// Redis
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}

	// Chatbot
	cfg.Chat.SessionStore = viper.GetString("chat.session_store")
	cfg.Chat.HistoryLimit = viper.GetInt("chat.history_limit")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	switch cfg.Chat.SessionStore {
	case "memory", "redis":
	default:
		return nil, fmt.Errorf("chat.session_store must be \"memory\" or \"redis\", got %q", cfg.Chat.SessionStore)
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Deepgram
	cfg.Deepgram.APIKey = viper.GetString("deepgram.api_key")
	cfg.Deepgram.Model = viper.GetString("deepgram.model")
	if deepgramKey := viper.GetString("deepgram_api_key"); deepgramKey != "" {
		cfg.Deepgram.APIKey = deepgramKey
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("auth.token_ttl", "168h")

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "expense_tracker")
	viper.SetDefault("postgres.ssl_mode", "disable")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("chat.session_store", "memory")
	viper.SetDefault("chat.history_limit", 50)
	viper.SetDefault("chat.rate_limit_per_min", 60)
}
