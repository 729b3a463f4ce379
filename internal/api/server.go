package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/abhisek/quizgen/internal/quizgen"
)

// Generator is the question generation surface the server exposes.
// *quizgen.QuestionGenerator implements it.
type Generator interface {
	GenerateMCQ(ctx context.Context, topic, difficulty string) (*quizgen.MCQQuestion, error)
	GenerateFillBlank(ctx context.Context, topic, difficulty string) (*quizgen.FillBlankQuestion, error)
	ModelID() string
}

// Options configures the HTTP server.
type Options struct {
	// Addr is the listen address.
	Addr string

	// Timeout bounds each generate call. Zero means no limit beyond the
	// client connection.
	Timeout time.Duration

	// AllowedOrigins lists CORS origins. Empty or "*" allows all.
	AllowedOrigins []string

	// Logger receives failed generations. Defaults to slog.Default().
	Logger *slog.Logger
}

// Server wraps a Gin router around a Generator.
type Server struct {
	Router *gin.Engine
	HTTP   *http.Server

	gen     Generator
	timeout time.Duration
	logger  *slog.Logger
}

// NewServer wires middleware and routes and returns an instance.
func NewServer(gen Generator, opts Options) *Server {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.New(corsConfig(opts.AllowedOrigins)))

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		Router:  router,
		gen:     gen,
		timeout: opts.Timeout,
		logger:  logger.With("component", "api"),
	}
	s.setupRoutes()
	s.HTTP = &http.Server{
		Addr:              opts.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func (s *Server) setupRoutes() {
	s.Router.GET("/health", s.health)

	v1 := s.Router.Group("/api/v1")
	{
		questions := v1.Group("/questions")
		questions.POST("/mcq", s.generateMCQ)
		questions.POST("/fill-blank", s.generateFillBlank)
	}
}

// ListenAndServe serves on Options.Addr until Shutdown is called. It
// returns nil once the server has been shut down, including when Shutdown
// ran first.
func (s *Server) ListenAndServe() error {
	if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.HTTP.Shutdown(ctx)
}
