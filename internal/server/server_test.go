package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"

	"github.com/agenthands/praline/internal/core"
	"github.com/agenthands/praline/internal/core/dynamic"
	"github.com/agenthands/praline/internal/scrape"
)

type stubDriver struct {
	Err error
}

func (d *stubDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	if d.Err != nil {
		return neo4j.EagerResult{}, d.Err
	}
	return neo4j.EagerResult{}, nil
}

func (d *stubDriver) SetupSchema(ctx context.Context) error { return nil }
func (d *stubDriver) Close(ctx context.Context) error       { return nil }

func newTestServer(d *stubDriver) *Server {
	gin.SetMode(gin.TestMode)
	return &Server{
		Pipeline: core.NewPipeline(d, nil, scrape.NewStaticFetcher(), dynamic.NewCache(2*time.Hour)),
		started:  time.Now(),
	}
}

func TestChatEndpoint(t *testing.T) {
	srv := newTestServer(&stubDriver{})
	router := srv.SetupRouter()

	body := strings.NewReader(`{"question": "Where can I buy KitKat?"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Answer   string                 `json:"answer"`
		Sources  []string               `json:"sources"`
		Metadata map[string]interface{} `json:"metadata"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Answer)
	assert.NotEmpty(t, resp.Sources)
	assert.Equal(t, "availability", resp.Metadata["intent"])
}

func TestChatRejectsMissingQuestion(t *testing.T) {
	srv := newTestServer(&stubDriver{})
	router := srv.SetupRouter()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthHealthy(t *testing.T) {
	srv := newTestServer(&stubDriver{})
	router := srv.SetupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestHealthDegradedWhenGraphDown(t *testing.T) {
	srv := newTestServer(&stubDriver{Err: errors.New("connection refused")})
	router := srv.SetupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}

func TestHealthStarting(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &Server{}
	router := srv.SetupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"starting"`)
}

func TestStatsEndpoint(t *testing.T) {
	srv := newTestServer(&stubDriver{})
	router := srv.SetupRouter()

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "total_nodes")
}
