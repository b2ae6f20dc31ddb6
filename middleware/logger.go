package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"hotel-site/utils"
)

// Logger logs every request through the structured site logger.
func Logger(logger *utils.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.LogHTTPRequest(c, time.Since(start))
	}
}
