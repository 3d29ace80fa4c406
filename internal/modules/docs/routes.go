package docs

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router builds the docs route group. Prefixes are read lazily so the index
// reflects whatever actually mounted, not the descriptor list.
func Router(prefixes func() []string) func() (http.Handler, error) {
	return func() (http.Handler, error) {
		r := gin.New()

		index := func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"docs":   "Mythiq API Documentation",
				"routes": prefixes(),
				"status": "online",
			})
		}
		r.GET("/", index)
		r.GET("/routes", index)

		return r, nil
	}
}
