package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"

	"expense-tracker/config"
	_ "expense-tracker/docs" // Swagger docs
	"expense-tracker/internal/chatbot/repository"
	memoryRepo "expense-tracker/internal/chatbot/repository/memory"
	redisRepo "expense-tracker/internal/chatbot/repository/redis"
	"expense-tracker/internal/httpserver"
	"expense-tracker/pkg/deepgram"
	"expense-tracker/pkg/gemini"
	"expense-tracker/pkg/log"
	"expense-tracker/pkg/scope"
)

// @title       Expense Tracker API
// @description Personal expense tracker with a conversational AI assistant, speech-to-text, and spending analytics.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Expense Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Error(ctx, "Failed to open Postgres connection: ", err)
		return
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error(ctx, "Failed to ping Postgres: ", err)
		return
	}
	logger.Infof(ctx, "Connected to Postgres at %s:%d", cfg.Postgres.Host, cfg.Postgres.Port)

	// 4. Session store
	var sessions repository.SessionRepository
	switch cfg.Chat.SessionStore {
	case "redis":
		redisClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error(ctx, "Failed to ping Redis: ", err)
			return
		}
		sessions = redisRepo.New(redisClient, logger)
		logger.Infof(ctx, "Chat history stored in Redis at %s", cfg.Redis.Addr)
	default:
		sessions = memoryRepo.New()
		logger.Info(ctx, "Chat history stored in memory")
	}

	// 5. Upstream AI services (both optional; the pipeline degrades without them)
	var llm gemini.IGemini
	if cfg.Gemini.APIKey != "" {
		llm, err = gemini.New(gemini.Config{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.Model,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Gemini client: ", err)
			return
		}
		logger.Infof(ctx, "Gemini initialized with model %s", llm.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY missing, chatbot replies will apologize")
	}

	var speech deepgram.IDeepgram
	if cfg.Deepgram.APIKey != "" {
		speech, err = deepgram.New(deepgram.Config{
			APIKey: cfg.Deepgram.APIKey,
			Model:  cfg.Deepgram.Model,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Deepgram client: ", err)
			return
		}
		logger.Infof(ctx, "Deepgram initialized with model %s", speech.Model())
	} else {
		logger.Warn(ctx, "DEEPGRAM_API_KEY missing, speech endpoints disabled")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		ScopeManager: scope.NewManager(cfg.Auth.Secret),
		RatePerMin:   cfg.Chat.RateLimitPerMin,
		PostgresDB:   db,
		Sessions:     sessions,
		LLM:          llm,
		Speech:       speech,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
