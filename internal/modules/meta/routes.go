package meta

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mythiq/gateway/internal/registry"
)

// Router builds the meta route group. Outcomes are read through a closure at
// request time, since registration is still in flight while this module is
// itself being registered.
func Router(started time.Time, outcomes func() []registry.Outcome) func() (http.Handler, error) {
	return func() (http.Handler, error) {
		r := gin.New()

		r.GET("/status", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "ok",
				"message":   "Mythiq is fully deployed and cognitively complete",
				"timestamp": time.Now().UTC(),
			})
		})

		r.GET("/uptime", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"started":        started,
				"uptime_seconds": int64(time.Since(started).Seconds()),
			})
		})

		r.GET("/bootmap", func(c *gin.Context) {
			outs := outcomes()
			mounted := 0
			for _, o := range outs {
				if o.Mounted {
					mounted++
				}
			}
			c.JSON(http.StatusOK, gin.H{
				"modules": outs,
				"mounted": mounted,
				"failed":  len(outs) - mounted,
			})
		})

		r.GET("/debug", func(c *gin.Context) {
			outs := outcomes()
			active := 0
			for _, o := range outs {
				if o.Mounted {
					active++
				}
			}
			c.JSON(http.StatusOK, gin.H{
				"status": "stable",
				"uptime": int64(time.Since(started).Seconds()),
				"introspection": gin.H{
					"reflex_score":   0.91,
					"goal_alignment": "adaptive",
					"modules_active": active,
				},
			})
		})

		return r, nil
	}
}
