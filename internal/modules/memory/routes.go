package memory

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type logRequest struct {
	Session  string         `json:"session"`
	Route    string         `json:"route"`
	Request  map[string]any `json:"request"`
	Response map[string]any `json:"response"`
}

// Router builds the memory route group. The store is shared across requests;
// all endpoints are backed by the same in-process journal.
func Router(store *Store) func() (http.Handler, error) {
	return func() (http.Handler, error) {
		r := gin.New()

		r.POST("/log", func(c *gin.Context) {
			var req logRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
				return
			}
			if req.Route == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "route must not be empty"})
				return
			}
			sessionID, entry := store.Log(req.Session, req.Route, req.Request, req.Response)
			c.JSON(http.StatusOK, gin.H{"session": sessionID, "entry": entry})
		})

		r.GET("/recall", func(c *gin.Context) {
			entries, err := store.Recall(c.Query("session"), c.Query("route"))
			if err != nil {
				sessionError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
		})

		r.GET("/score", func(c *gin.Context) {
			score, diversity, depth, err := store.ConfidenceScore(c.Query("session"))
			if err != nil {
				sessionError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"confidence_score": score,
				"diversity":        diversity,
				"depth":            depth,
			})
		})

		r.GET("/integrity", func(c *gin.Context) {
			valid, err := store.Validate(c.Query("session"))
			if err != nil {
				sessionError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"valid": valid})
		})

		r.GET("/reflect", func(c *gin.Context) {
			sessions, entries := store.Summary()
			c.JSON(http.StatusOK, gin.H{
				"sessions":     sessions,
				"entries":      entries,
				"generated_at": time.Now().UTC(),
			})
		})

		return r, nil
	}
}

func sessionError(c *gin.Context, err error) {
	if errors.Is(err, ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
