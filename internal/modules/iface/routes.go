package iface

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router builds the interface-styling route group.
func Router() (http.Handler, error) {
	r := gin.New()

	r.GET("/style/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"interface_core": "online",
			"message":        "Interface styling API is active",
		})
	})

	r.GET("/plugin/spec", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"plugin_support": true,
			"method":         "Registration table entry",
			"requirements": gin.H{
				"constructor":     "func() (http.Handler, error)",
				"endpoint_prefix": "/api/{plugin_name}",
			},
			"example": gin.H{
				"name":   "sentiment_plugin",
				"prefix": "/api/sentiment",
			},
		})
	})

	return r, nil
}
