package handlers

import (
	"github.com/gin-gonic/gin"
)

// clientIP prefers the RealIP middleware's resolution over gin's.
func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}
