// Package server exposes the pipeline over HTTP. Input validation lives
// here, not in the pipeline: missing fields and bad dates are rejected with
// 400, unknown games with 404, before the pipeline runs.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"catchup/internal/catalog"
	"catchup/internal/pipeline"
)

type Server struct {
	echo     *echo.Echo
	pipeline *pipeline.Pipeline
}

type summarizeRequest struct {
	GameID         string `json:"game_id"`
	LastPlayedDate string `json:"last_played_date"`
}

func New(p *pipeline.Pipeline) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Unified HTTP error handler with structured JSON and logging.
	httpLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		httpLogger.Printf("%d %s %s: %v", code, req.Method, req.URL.Path, err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]string{"error": msg})
		}
	}

	s := &Server{echo: e, pipeline: p}

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/api/games", s.handleGames)
	e.POST("/api/summarize", s.handleSummarize)

	return s
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start(addr string) error {
	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleGames(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.All())
}

func (s *Server) handleSummarize(c echo.Context) error {
	var req summarizeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.GameID == "" || req.LastPlayedDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "game_id and last_played_date are required")
	}

	game, ok := catalog.ByID(req.GameID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "game not found")
	}

	lastPlayed, err := parseDate(req.LastPlayedDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date format")
	}

	res := s.pipeline.Run(c.Request().Context(), game, lastPlayed)
	return c.JSON(http.StatusOK, res)
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("server: unparsable date %q", s)
}
