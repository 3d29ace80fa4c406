package registry

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	zerologlog "github.com/rs/zerolog/log"
)

// Descriptor names a route group and how to build it. The descriptor list is
// assembled at compile time; there is no runtime lookup of modules by string.
type Descriptor struct {
	Name   string
	Prefix string
	Build  func() (http.Handler, error)
}

// Outcome is the per-descriptor registration result, kept for startup
// diagnostics and served by the meta bootmap endpoint.
type Outcome struct {
	Name    string `json:"name"`
	Prefix  string `json:"prefix"`
	Mounted bool   `json:"mounted"`
	Error   string `json:"error,omitempty"`
}

// Registry registers route groups once at startup and dispatches requests to
// them by URL prefix. When two descriptors share a prefix, the later
// registration overwrites the earlier one in the dispatch map: last wins.
type Registry struct {
	handlers map[string]http.Handler
	prefixes []string // distinct prefixes in first-seen order
	outcomes []Outcome
}

func New() *Registry {
	return &Registry{handlers: make(map[string]http.Handler)}
}

// Register runs every descriptor's constructor in order. A constructor that
// errors, panics, or returns a nil handler yields a failed outcome; the
// remaining descriptors still register.
func (r *Registry) Register(descs []Descriptor) []Outcome {
	for _, d := range descs {
		out := r.register(d)
		r.outcomes = append(r.outcomes, out)
		if out.Mounted {
			zerologlog.Info().Str("module", out.Name).Str("prefix", out.Prefix).Msg("module mounted")
		} else {
			zerologlog.Warn().Str("module", out.Name).Str("prefix", out.Prefix).Str("reason", out.Error).Msg("module failed")
		}
	}
	return r.Outcomes()
}

func (r *Registry) register(d Descriptor) (out Outcome) {
	out = Outcome{Name: d.Name, Prefix: d.Prefix}
	defer func() {
		if rec := recover(); rec != nil {
			out.Mounted = false
			out.Error = fmt.Sprintf("constructor panicked: %v", rec)
		}
	}()
	if d.Build == nil {
		out.Error = "no constructor"
		return
	}
	h, err := d.Build()
	if err != nil {
		out.Error = err.Error()
		return
	}
	if h == nil {
		out.Error = "constructor returned no handler"
		return
	}
	if _, seen := r.handlers[d.Prefix]; !seen {
		r.prefixes = append(r.prefixes, d.Prefix)
	}
	r.handlers[d.Prefix] = h
	out.Mounted = true
	return
}

// Mount attaches each registered prefix to app. Dispatch goes through the
// handler map, so whatever was registered last for a prefix serves it.
func (r *Registry) Mount(app gin.IRouter) {
	for _, prefix := range r.prefixes {
		h := r.dispatch(prefix)
		app.Any(prefix, h)
		app.Any(prefix+"/*rest", h)
	}
}

func (r *Registry) dispatch(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		handler, ok := r.handlers[prefix]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "module not mounted"})
			return
		}
		req := c.Request.Clone(c.Request.Context())
		req.URL.Path = trimPrefix(req.URL.Path, prefix)
		handler.ServeHTTP(c.Writer, req)
	}
}

func trimPrefix(path, prefix string) string {
	trimmed := strings.TrimPrefix(path, prefix)
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

// Prefixes returns the distinct mounted prefixes in registration order.
func (r *Registry) Prefixes() []string {
	return append([]string(nil), r.prefixes...)
}

// Outcomes returns a copy of all registration outcomes in descriptor order.
func (r *Registry) Outcomes() []Outcome {
	return append([]Outcome(nil), r.outcomes...)
}
