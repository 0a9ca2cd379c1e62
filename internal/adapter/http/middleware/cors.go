package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware must be installed on the engine, not a group, so that
// preflight requests on any path are answered before routing and auth.
func CORSMiddleware(allowOrigin string) gin.HandlerFunc {
	if allowOrigin == "" {
		allowOrigin = "*"
	}

	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", allowOrigin)
		header.Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		header.Set("Access-Control-Allow-Methods", "OPTIONS,GET,POST,PUT,DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"ok": true})
			return
		}
		c.Next()
	}
}
