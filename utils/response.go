package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONSuccess sends a response with the success discriminator set, merging
// in any payload keys (crop, crops, bid, ...).
func JSONSuccess(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
