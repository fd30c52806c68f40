package middleware

import (
	"time"

	"hms/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger ghi log mỗi request vào file log của ứng dụng
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		utils.LogInfo("%s %s -> %d (%v)",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start))
	}
}
