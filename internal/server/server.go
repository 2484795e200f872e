package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/agenthands/praline/internal/config"
	"github.com/agenthands/praline/internal/core"
	"github.com/agenthands/praline/internal/core/dynamic"
	"github.com/agenthands/praline/internal/driver"
	"github.com/agenthands/praline/internal/llm"
	"github.com/agenthands/praline/internal/scrape"
)

type Server struct {
	Pipeline *core.Pipeline
	started  time.Time
}

// NewServer builds the full pipeline from configuration. The graph
// store must be reachable at startup; the LLM client is optional.
func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfgPath).Msg("config file not loaded, using defaults")
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	d, err := driver.NewNeo4jDriver(cfg.Graph.URI, cfg.Graph.User, cfg.Graph.Password)
	if err != nil {
		log.Fatal().Err(err).Str("uri", cfg.Graph.URI).Msg("failed to connect to graph store")
	}

	if err := d.SetupSchema(context.Background()); err != nil {
		log.Warn().Err(err).Msg("schema setup incomplete")
	}

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.LLM.Provider).Msg("failed to initialize LLM client")
	}
	if llmClient == nil {
		log.Info().Msg("no LLM provider configured, answers will be template-based")
	}

	var fetcher scrape.Fetcher
	if cfg.Scraper.Enabled {
		fetcher = scrape.NewLiveFetcher(time.Duration(cfg.Scraper.TimeoutSeconds)*time.Second, cfg.Scraper.UserAgent)
	} else {
		fetcher = scrape.NewStaticFetcher()
	}

	cache := dynamic.NewCache(time.Duration(cfg.Cache.TTLHours) * time.Hour)

	return &Server{
		Pipeline: core.NewPipeline(d, llmClient, fetcher, cache),
		started:  time.Now(),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/chat", s.Chat)
	r.GET("/health", s.Health)
	r.GET("/stats", s.Stats)

	return r
}

type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}

func (s *Server) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	answer := s.Pipeline.Ask(c.Request.Context(), req.Question)
	c.JSON(http.StatusOK, answer)
}

func (s *Server) Health(c *gin.Context) {
	if s.Pipeline == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
		return
	}

	if err := s.Pipeline.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status": "degraded",
			"graph":  "unavailable",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"graph":  "connected",
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) Stats(c *gin.Context) {
	stats, err := s.Pipeline.Stats(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("stats query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query graph statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
