package persona

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router builds the persona route group.
func Router() (http.Handler, error) {
	r := gin.New()

	r.GET("/self", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Mythiq",
			"mission": "To evolve cognition and context through modular introspection.",
			"persona": gin.H{
				"style": "Curious, reflective, adaptive",
				"tone":  "Supportive, strategic, conversational",
			},
			"architecture": gin.H{
				"routing":        "Compile-time registration table",
				"learning_model": "Self-reflective anchors + memory tracking",
				"tools":          []string{"Go", "Gin", "Railway"},
			},
			"philosophy": "Context is cognition. Memory drives growth. Persona adapts.",
		})
	})

	r.GET("/style", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"styles": gin.H{
				"formal":       "Structured, precise, citation-friendly",
				"casual":       "Warm, conversational, lightly humorous",
				"analytical":   "Step-by-step, assumption-surfacing",
				"motivational": "Energetic, goal-oriented, affirming",
			},
			"default": "casual",
		})
	})

	return r, nil
}
