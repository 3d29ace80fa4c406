package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	zerologlog "github.com/rs/zerolog/log"

	"github.com/mythiq/gateway/internal/ai/groq"
	"github.com/mythiq/gateway/internal/ai/openai"
	"github.com/mythiq/gateway/internal/config"
	"github.com/mythiq/gateway/internal/metrics"
	"github.com/mythiq/gateway/internal/modules/docs"
	"github.com/mythiq/gateway/internal/modules/iface"
	"github.com/mythiq/gateway/internal/modules/memory"
	"github.com/mythiq/gateway/internal/modules/meta"
	"github.com/mythiq/gateway/internal/modules/persona"
	"github.com/mythiq/gateway/internal/modules/staticmod"
	"github.com/mythiq/gateway/internal/proxy"
	"github.com/mythiq/gateway/internal/registry"
	staticserver "github.com/mythiq/gateway/static"
)

// Build is the composition root: it assembles the fully-wired gin engine and
// registers every route group exactly once. Nothing global is mutated; the
// registry is the only thing modules share.
func Build(cfg config.Config) (*gin.Engine, *registry.Registry) {
	started := time.Now().UTC()
	m := metrics.New()

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}))
	r.Use(requestID())
	r.Use(requestLog())
	r.Use(m.Middleware())

	r.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET("/", gin.WrapH(staticserver.Handler()))

	reg := registry.New()
	reg.Register(descriptors(cfg, started, reg))
	reg.Mount(r)
	return r, reg
}

// descriptors is the registration table. Order is registration order; the
// meta and docs closures read the registry lazily so their views stay live.
func descriptors(cfg config.Config, started time.Time, reg *registry.Registry) []registry.Descriptor {
	memStore := memory.NewStore()

	upstreams := map[string]proxy.Upstream{
		"groq":   {Provider: groq.New(cfg.GroqKey, cfg.GroqBaseURL, cfg.ProxyTimeout), Model: cfg.DefaultModel},
		"openai": {Provider: openai.New(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.ProxyTimeout), Model: "gpt-4o-mini"},
	}
	prompts := proxy.NewHandler(upstreams, cfg.DefaultProvider, cfg.ProxyTimeout)

	descs := []registry.Descriptor{
		{Name: "persona", Prefix: "/api/persona", Build: persona.Router},
		{Name: "memory", Prefix: "/api/memory", Build: memory.Router(memStore)},
		{Name: "meta", Prefix: "/api/meta", Build: meta.Router(started, reg.Outcomes)},
		{Name: "docs", Prefix: "/api/docs", Build: docs.Router(reg.Prefixes)},
		{Name: "interface", Prefix: "/api/interface", Build: iface.Router},
		{Name: "ai-proxy", Prefix: "/api/ai-proxy", Build: prompts.Router},
	}

	mods, err := staticmod.Load()
	if err != nil {
		// Surface the bad catalog as one failed outcome instead of aborting.
		descs = append(descs, registry.Descriptor{
			Name:   "catalog",
			Prefix: "/api/catalog",
			Build:  func() (http.Handler, error) { return nil, err },
		})
		return descs
	}
	return append(descs, staticmod.Descriptors(mods)...)
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/metrics") {
			return
		}
		zerologlog.Info().
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("dur", time.Since(start)).
			Msg("http")
	}
}
