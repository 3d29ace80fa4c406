package proxy

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mythiq/gateway/internal/ai"
)

// Upstream pairs a provider client with the model it should be asked for.
type Upstream struct {
	Provider ai.Provider
	Model    string
}

// Handler serves the prompt-forwarding endpoint. Each request makes exactly
// one upstream call; there is no retry, caching, or rate limiting.
type Handler struct {
	upstreams map[string]Upstream
	fallback  string
	timeout   time.Duration
}

func NewHandler(upstreams map[string]Upstream, fallback string, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Handler{upstreams: upstreams, fallback: fallback, timeout: timeout}
}

// Router builds the route group mounted at the proxy prefix.
func (h *Handler) Router() (http.Handler, error) {
	r := gin.New()
	r.POST("/", h.handlePrompt)
	return r, nil
}

type promptRequest struct {
	Query    string `json:"query"`
	Provider string `json:"provider"`
}

func (h *Handler) handlePrompt(c *gin.Context) {
	var req promptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query must not be empty"})
		return
	}

	up, ok := h.upstreams[req.Provider]
	if !ok {
		// Unrecognized provider names fall back rather than fail.
		up, ok = h.upstreams[h.fallback]
	}
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "no provider configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	content, err := up.Provider.Complete(ctx, up.Model, req.Query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream request failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}
