package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root godoc
// @Summary API info
// @Description List the capabilities of this API
// @Tags info
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "YouTube Video Scraper API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"GET /video":  "Get video data by URL query parameter",
			"POST /video": "Get video data by URL in request body",
			"GET /health": "Health check endpoint",
		},
	})
}
