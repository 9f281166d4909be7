package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/brewsearch/brew/message"
	"github.com/brewsearch/brew/search"
)

const defaultRequestTimeout = 30 * time.Second

// Server routes HTTP requests to the searcher and message generator.
type Server struct {
	engine    *gin.Engine
	searcher  *search.Searcher
	generator *message.Generator
	timeout   time.Duration
	logger    *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithTimeout bounds the backend work done for one request.
// Default is 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Server) error {
		if timeout > 0 {
			s.timeout = timeout
		}
		return nil
	}
}

// New creates a server over a searcher and a message generator.
func New(searcher *search.Searcher, generator *message.Generator, opts ...Option) (*Server, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	s := &Server{
		searcher:  searcher,
		generator: generator,
		timeout:   defaultRequestTimeout,
		logger:    slog.Default().With("component", "server"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	// Browser clients call from arbitrary origins.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	engine.Use(cors.New(corsConfig))

	s.registerRoutes(engine)
	s.engine = engine

	return s, nil
}

func (s *Server) registerRoutes(e *gin.Engine) {
	e.GET("/", s.handleRoot)
	e.GET("/health", s.handleHealth)
	e.GET("/search", s.handleSearchGet)
	e.POST("/search", s.handleSearchPost)
	e.GET("/profile/:id", s.handleProfile)
	e.GET("/profiles", s.handleProfiles)
	e.POST("/generate-message", s.handleGenerateMessage)
}

// Handler returns the HTTP handler, for tests and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("starting http server", "addr", addr)
	return s.engine.Run(addr)
}
