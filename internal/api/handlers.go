package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/quizgen/internal/quizgen"
)

// GenerateRequest is the body of both question endpoints.
type GenerateRequest struct {
	Topic      string `json:"topic" binding:"required"`
	Difficulty string `json:"difficulty"`
}

// GET /health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "model": s.gen.ModelID()})
}

// POST /api/v1/questions/mcq
func (s *Server) generateMCQ(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	q, err := s.gen.GenerateMCQ(ctx, req.Topic, req.Difficulty)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// POST /api/v1/questions/fill-blank
func (s *Server) generateFillBlank(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	q, err := s.gen.GenerateFillBlank(ctx, req.Topic, req.Difficulty)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

func bindRequest(c *gin.Context) (GenerateRequest, bool) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return req, false
	}
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: topic is required"})
		return req, false
	}
	return req, true
}

func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(c.Request.Context(), s.timeout)
	}
	return context.WithCancel(c.Request.Context())
}

// writeError maps generation failures onto status codes: 504 when the
// deadline expired, 502 for any other generation failure.
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var genErr *quizgen.GenerationError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	case errors.As(err, &genErr):
		status = http.StatusBadGateway
	}
	s.logger.Warn("generation failed", "path", c.FullPath(), "status", status, "error", err)
	c.JSON(status, gin.H{"error": err.Error()})
}
