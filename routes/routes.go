package routes

import (
	"github.com/gin-gonic/gin"

	"go-reviewpulse/classifier"
	"go-reviewpulse/handlers"
)

func SetupRouter(pipeline *classifier.Pipeline) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to ReviewPulse!",
		})
	})

	// api routes
	api := r.Group("/api/reviewpulse")
	{
		api.POST("/classify", func(c *gin.Context) {
			handlers.ClassifyReview(c, pipeline)
		})
		api.POST("/classify/batch", func(c *gin.Context) {
			handlers.ClassifyBatch(c, pipeline)
		})
		api.GET("/demo", func(c *gin.Context) {
			handlers.GetDemoData(c, pipeline)
		})
		api.GET("/live", func(c *gin.Context) {
			handlers.ClassifyLive(c, pipeline)
		})
	}

	return r
}
