package staticmod

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/mythiq/gateway/internal/registry"
)

//go:embed catalog.yaml
var rawCatalog []byte

// Route is one fixed-response path inside a catalog module.
type Route struct {
	Path     string         `yaml:"path"`
	Response map[string]any `yaml:"response"`
}

// Module is one near-static route group. These groups have no behavior beyond
// returning their configured payload, so they live as data instead of code.
type Module struct {
	Name   string  `yaml:"name"`
	Prefix string  `yaml:"prefix"`
	Routes []Route `yaml:"routes"`
}

type catalog struct {
	Modules []Module `yaml:"modules"`
}

// Load parses the embedded catalog.
func Load() ([]Module, error) {
	var c catalog
	if err := yaml.Unmarshal(rawCatalog, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for _, m := range c.Modules {
		if m.Name == "" || m.Prefix == "" || len(m.Routes) == 0 {
			return nil, fmt.Errorf("catalog module %q: name, prefix and routes are required", m.Name)
		}
	}
	return c.Modules, nil
}

// Descriptors turns catalog modules into registry entries.
func Descriptors(mods []Module) []registry.Descriptor {
	descs := make([]registry.Descriptor, 0, len(mods))
	for _, m := range mods {
		descs = append(descs, registry.Descriptor{
			Name:   m.Name,
			Prefix: m.Prefix,
			Build:  router(m),
		})
	}
	return descs
}

func router(m Module) func() (http.Handler, error) {
	return func() (http.Handler, error) {
		r := gin.New()
		for _, route := range m.Routes {
			r.GET(route.Path, respond(m.Name, route.Response))
		}
		return r, nil
	}
}

func respond(module string, template map[string]any) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := make(map[string]any, len(template)+2)
		for k, v := range template {
			body[k] = v
		}
		body["module"] = module
		body["timestamp"] = time.Now().UTC()
		c.JSON(http.StatusOK, body)
	}
}
