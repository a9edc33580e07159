package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"expense-tracker/internal/chatbot/repository"
	"expense-tracker/pkg/deepgram"
	"expense-tracker/pkg/gemini"
	"expense-tracker/pkg/log"
	"expense-tracker/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Auth
	scopeManager scope.Manager
	ratePerMin   int

	// Storage
	postgresDB *sql.DB
	sessions   repository.SessionRepository

	// Upstream AI services; nil when not configured.
	llm    gemini.IGemini
	speech deepgram.IDeepgram
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ScopeManager scope.Manager
	RatePerMin   int

	PostgresDB *sql.DB
	Sessions   repository.SessionRepository

	LLM    gemini.IGemini
	Speech deepgram.IDeepgram
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		scopeManager: cfg.ScopeManager,
		ratePerMin:   cfg.RatePerMin,
		postgresDB:   cfg.PostgresDB,
		sessions:     cfg.Sessions,
		llm:          cfg.LLM,
		speech:       cfg.Speech,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.scopeManager == nil {
		return errors.New("scope manager is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.sessions == nil {
		return errors.New("session repository is required")
	}
	return nil
}
