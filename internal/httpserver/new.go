package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/minakianandclaude/LifeTracker/internal/middleware"
	"github.com/minakianandclaude/LifeTracker/internal/voice/parser"
	pkgErrors "github.com/minakianandclaude/LifeTracker/pkg/errors"
	"github.com/minakianandclaude/LifeTracker/pkg/log"
	"github.com/minakianandclaude/LifeTracker/pkg/ollama"
)

const defaultShutdownTimeout = 10 * time.Second

type pinger interface {
	PingContext(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage
	postgresDB *sql.DB
	db         pinger

	// Voice parsing
	llm       ollama.IOllama
	parserCfg parser.Config

	// Edge
	mw middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PostgresDB *sql.DB
	Ollama     ollama.IOllama
	Parser     parser.Config

	Middleware middleware.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(pkgErrors.JSONFieldName)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		llm:             cfg.Ollama,
		parserCfg:       cfg.Parser,
		mw:              middleware.New(logger, cfg.Middleware),
	}
	if cfg.PostgresDB != nil {
		srv.db = cfg.PostgresDB
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.llm == nil {
		return errors.New("ollama client is required")
	}
	return nil
}
