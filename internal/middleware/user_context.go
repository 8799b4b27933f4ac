package middleware

import (
	"campus-portal/internal/session"

	"github.com/gin-gonic/gin"
)

// InjectUser copies the session snapshot into the gin context for templates.
// The snapshot is trusted as-is; no per-request store round-trip.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if snap, ok := session.Current(c); ok {
			c.Set("CurrentUser", snap)
		}
		c.Next()
	}
}
